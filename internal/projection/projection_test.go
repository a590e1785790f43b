package projection

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"cloudbox/internal/domain"
)

func size(n int64) *int64 { return &n }

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func names(records []domain.FileRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func sample() []domain.FileRecord {
	return []domain.FileRecord{
		{ID: "1", Name: "b.txt", Kind: domain.KindFile, Size: size(100), MIMEType: "text/plain", ModifiedAt: day(2), State: domain.StateActive, Path: "/b.txt"},
		{ID: "2", Name: "a.txt", Kind: domain.KindFile, Size: size(200), MIMEType: "text/plain", ModifiedAt: day(1), State: domain.StateActive, Path: "/a.txt"},
		{ID: "3", Name: "c.txt", Kind: domain.KindFile, Size: size(50), MIMEType: "text/plain", ModifiedAt: day(3), State: domain.StateTrashed, Path: "/c.txt"},
	}
}

func TestProjectScenarios(t *testing.T) {
	tests := []struct {
		name   string
		search string
		key    domain.SortKey
		want   []string
	}{
		{"by name", "", domain.SortByName, []string{"a.txt", "b.txt"}},
		{"by size", "", domain.SortBySize, []string{"a.txt", "b.txt"}},
		{"by date", "", domain.SortByDate, []string{"b.txt", "a.txt"}},
		{"no match", "z", domain.SortByName, []string{}},
		{"case insensitive", "A.T", domain.SortByName, []string{"a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Project(sample(), "/", tt.search, tt.key))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Project(%q, %v) = %v, want %v", tt.search, tt.key, got, tt.want)
			}
		})
	}
}

func TestProjectNeverReturnsTrashed(t *testing.T) {
	records := sample()
	for _, key := range []domain.SortKey{domain.SortByName, domain.SortBySize, domain.SortByDate, domain.SortByType} {
		for _, r := range Project(records, "", "", key) {
			if r.Trashed() {
				t.Errorf("Project(%v) returned trashed record %q", key, r.Name)
			}
		}
	}
}

func TestProjectPathPrefix(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "1", Name: "Photos", Kind: domain.KindFolder, State: domain.StateActive, Path: "/Photos"},
		{ID: "2", Name: "a.jpg", State: domain.StateActive, Path: "/Photos/a.jpg"},
		{ID: "3", Name: "b.jpg", State: domain.StateActive, Path: "/Photos2/b.jpg"},
		{ID: "4", Name: "doc.pdf", State: domain.StateActive, Path: "/Documents/doc.pdf"},
	}

	got := names(Project(records, "/Photos", "", domain.SortByName))
	want := []string{"a.jpg", "b.jpg", "Photos"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Project(/Photos) = %v, want %v", got, want)
	}

	if got := Project(records, "/", "", domain.SortByName); len(got) != len(records) {
		t.Errorf("Project(/) returned %d records, want %d", len(got), len(records))
	}
}

func TestProjectSearchMatchesName(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "1", Name: "Vacation.JPG", State: domain.StateActive, Path: "/Vacation.JPG"},
		{ID: "2", Name: "notes.md", State: domain.StateActive, Path: "/vacation/notes.md"},
		{ID: "3", Name: "Summer vacation", Kind: domain.KindFolder, State: domain.StateActive, Path: "/Summer vacation"},
	}

	got := Project(records, "/", "vacation", domain.SortByName)
	for _, r := range got {
		if !strings.Contains(strings.ToLower(r.Name), "vacation") {
			t.Errorf("record %q does not match search", r.Name)
		}
	}
	if len(got) != 2 {
		t.Errorf("got %d records, want 2", len(got))
	}

	all := Project(records, "/", "", domain.SortByName)
	if len(all) != len(records) {
		t.Errorf("empty search returned %d records, want %d", len(all), len(records))
	}
}

func TestProjectNameIsLocaleAware(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "1", Name: "Banana", State: domain.StateActive, Path: "/Banana"},
		{ID: "2", Name: "apple", State: domain.StateActive, Path: "/apple"},
		{ID: "3", Name: "cherry", State: domain.StateActive, Path: "/cherry"},
	}

	got := names(Project(records, "/", "", domain.SortByName))
	want := []string{"apple", "Banana", "cherry"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Project(name) = %v, want %v", got, want)
	}
}

func TestProjectMissingSizeSortsAsZero(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "1", Name: "folder", Kind: domain.KindFolder, State: domain.StateActive, Path: "/folder"},
		{ID: "2", Name: "big", Size: size(10), State: domain.StateActive, Path: "/big"},
		{ID: "3", Name: "empty", Size: size(0), State: domain.StateActive, Path: "/empty"},
	}

	got := Project(records, "/", "", domain.SortBySize)
	if got[0].Name != "big" {
		t.Fatalf("first record = %q, want big", got[0].Name)
	}
	// folder and empty are both zero-sized and keep input order
	if !reflect.DeepEqual(names(got[1:]), []string{"folder", "empty"}) {
		t.Errorf("tail = %v, want [folder empty]", names(got[1:]))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].SizeOrZero() < got[i].SizeOrZero() {
			t.Errorf("size order broken at %d: %d < %d", i, got[i-1].SizeOrZero(), got[i].SizeOrZero())
		}
	}
}

func TestProjectTypeMissingSortsFirst(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "1", Name: "song", MIMEType: "audio/mpeg", State: domain.StateActive, Path: "/song"},
		{ID: "2", Name: "docs", Kind: domain.KindFolder, State: domain.StateActive, Path: "/docs"},
		{ID: "3", Name: "report", MIMEType: "application/pdf", State: domain.StateActive, Path: "/report"},
		{ID: "4", Name: "photo", MIMEType: "image/jpeg", State: domain.StateActive, Path: "/photo"},
	}

	got := names(Project(records, "/", "", domain.SortByType))
	want := []string{"docs", "report", "song", "photo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Project(type) = %v, want %v", got, want)
	}
}

func TestProjectIsStable(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "1", Name: "x", Size: size(5), ModifiedAt: day(1), State: domain.StateActive, Path: "/1"},
		{ID: "2", Name: "x", Size: size(5), ModifiedAt: day(1), State: domain.StateActive, Path: "/2"},
		{ID: "3", Name: "x", Size: size(5), ModifiedAt: day(1), State: domain.StateActive, Path: "/3"},
		{ID: "4", Name: "x", Size: size(5), ModifiedAt: day(1), State: domain.StateActive, Path: "/4"},
	}

	for _, key := range []domain.SortKey{domain.SortByName, domain.SortBySize, domain.SortByDate, domain.SortByType} {
		got := Project(records, "/", "", key)
		for i, r := range got {
			if r.ID != records[i].ID {
				t.Errorf("Project(%v)[%d].ID = %s, want %s", key, i, r.ID, records[i].ID)
			}
		}
	}
}

func TestProjectIsPure(t *testing.T) {
	records := sample()
	before := make([]domain.FileRecord, len(records))
	for i := range records {
		before[i] = records[i].Clone()
	}

	first := Project(records, "/", "", domain.SortBySize)
	second := Project(records, "/", "", domain.SortBySize)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Project calls differ: %v vs %v", names(first), names(second))
	}
	if !reflect.DeepEqual(records, before) {
		t.Error("Project mutated its input")
	}

	*first[0].Size = 1
	if *records[1].Size != 200 {
		t.Error("Project result shares size pointer with input")
	}
}

func TestFavoritesAndShared(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "1", Name: "b", Favorite: true, State: domain.StateActive, Path: "/b"},
		{ID: "2", Name: "a", Favorite: true, Shared: true, State: domain.StateActive, Path: "/a"},
		{ID: "3", Name: "c", Favorite: true, Shared: true, State: domain.StateTrashed, Path: "/c"},
		{ID: "4", Name: "d", Shared: true, State: domain.StateActive, Path: "/d"},
	}

	if got := names(Favorites(records, domain.SortByName)); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Favorites = %v, want [a b]", got)
	}
	if got := names(SharedItems(records, domain.SortByName)); !reflect.DeepEqual(got, []string{"a", "d"}) {
		t.Errorf("SharedItems = %v, want [a d]", got)
	}
}

func TestTrashOrder(t *testing.T) {
	t1, t2 := day(5), day(9)
	records := []domain.FileRecord{
		{ID: "1", Name: "old", State: domain.StateTrashed, TrashedAt: &t1},
		{ID: "2", Name: "active", State: domain.StateActive},
		{ID: "3", Name: "unknown", State: domain.StateTrashed},
		{ID: "4", Name: "new", State: domain.StateTrashed, TrashedAt: &t2},
	}

	got := names(Trash(records))
	want := []string{"new", "old", "unknown"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Trash = %v, want %v", got, want)
	}
}

func TestBreadcrumbs(t *testing.T) {
	tests := []struct {
		path string
		want []domain.Breadcrumb
	}{
		{"/", []domain.Breadcrumb{{Name: "Home", Path: "/"}}},
		{"", []domain.Breadcrumb{{Name: "Home", Path: "/"}}},
		{"/Documents/Work", []domain.Breadcrumb{
			{Name: "Home", Path: "/"},
			{Name: "Documents", Path: "/Documents"},
			{Name: "Work", Path: "/Documents/Work"},
		}},
		{"//a//b/", []domain.Breadcrumb{
			{Name: "Home", Path: "/"},
			{Name: "a", Path: "/a"},
			{Name: "b", Path: "/a/b"},
		}},
	}

	for _, tt := range tests {
		got := Breadcrumbs(tt.path)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Breadcrumbs(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
