package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloudbox/internal/domain"
	"cloudbox/internal/repository"
)

var testNow = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newTestRepo(t *testing.T) *repository.FileRepository {
	t.Helper()
	seed, err := repository.LoadSeed("")
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}
	repo, err := repository.NewFileRepository(seed.Files)
	if err != nil {
		t.Fatalf("NewFileRepository() error = %v", err)
	}
	return repo.WithClock(fixedClock)
}

func TestListFilesDefaultsToRoot(t *testing.T) {
	svc := NewFileService(newTestRepo(t))

	content, err := svc.ListFiles(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if content.Path != "/" {
		t.Errorf("Path = %q, want /", content.Path)
	}
	if len(content.Items) != 4 {
		t.Errorf("len(Items) = %d, want 4", len(content.Items))
	}
	if content.Items[0].Name != "Documents" {
		t.Errorf("first item = %q, want Documents", content.Items[0].Name)
	}
}

func TestListFilesScopedBySearchAndPath(t *testing.T) {
	svc := NewFileService(newTestRepo(t))

	content, _ := svc.ListFiles(context.Background(), ListParams{Path: "/Photos", Sort: domain.SortBySize})
	if len(content.Items) != 2 || content.Items[0].Name != "vacation.jpg" {
		t.Errorf("Items = %+v", content.Items)
	}
	if len(content.Breadcrumbs) == 0 {
		t.Error("Breadcrumbs are empty")
	}

	content, _ = svc.ListFiles(context.Background(), ListParams{Search: "PRES"})
	if len(content.Items) != 1 || content.Items[0].ID != "3" {
		t.Errorf("search Items = %+v", content.Items)
	}
}

func TestCreateFolder(t *testing.T) {
	ctx := context.Background()
	svc := NewFileService(newTestRepo(t))
	svc.now = fixedClock

	rec, err := svc.CreateFolder(ctx, domain.CreateFolderRequest{Name: " Reports ", ParentPath: "/Documents"})
	if err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}
	if rec.Path != "/Documents/Reports" || !rec.IsFolder() || !rec.ModifiedAt.Equal(testNow) {
		t.Errorf("CreateFolder() = %+v", rec)
	}

	_, err = svc.CreateFolder(ctx, domain.CreateFolderRequest{Name: "Reports", ParentPath: "/Documents"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("duplicate CreateFolder() error = %v, want ErrAlreadyExists", err)
	}

	for _, name := range []string{"", "  ", "a/b", ".", ".."} {
		if _, err := svc.CreateFolder(ctx, domain.CreateFolderRequest{Name: name}); !errors.Is(err, domain.ErrInvalidName) {
			t.Errorf("CreateFolder(%q) error = %v, want ErrInvalidName", name, err)
		}
	}

	if _, err := svc.CreateFolder(ctx, domain.CreateFolderRequest{Name: "x", ParentPath: "relative"}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("relative parent error = %v", err)
	}
}

func TestFavoritesSharedRecent(t *testing.T) {
	ctx := context.Background()
	svc := NewFileService(newTestRepo(t))

	if got := svc.Favorites(ctx, domain.SortByName); len(got) != 2 {
		t.Errorf("Favorites() = %d records, want 2", len(got))
	}
	if got := svc.Shared(ctx, domain.SortByName); len(got) != 2 {
		t.Errorf("Shared() = %d records, want 2", len(got))
	}

	recent := svc.Recent(ctx, 2)
	if len(recent) != 2 || recent[0].Name != "presentation.pdf" || recent[1].Name != "vacation.jpg" {
		t.Errorf("Recent(2) = %+v", recent)
	}
	if got := svc.Recent(ctx, 0); len(got) != 4 {
		t.Errorf("Recent(0) = %d records, want 4", len(got))
	}

	rec, err := svc.ToggleFavorite(ctx, "1")
	if err != nil || !rec.Favorite {
		t.Errorf("ToggleFavorite() = %+v, %v", rec, err)
	}
	if _, err := svc.ToggleFavorite(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ToggleFavorite(nope) error = %v", err)
	}
}
