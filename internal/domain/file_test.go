package domain

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	size := int64(10)
	now := time.Now()

	folder := FileRecord{Kind: KindFolder, Size: &size, MIMEType: "x", Thumbnail: "t"}
	folder.Normalize()
	if folder.Size != nil || folder.MIMEType != "" || folder.Thumbnail != "" || folder.State != StateActive {
		t.Errorf("folder after Normalize = %+v", folder)
	}

	active := FileRecord{State: StateActive, TrashedAt: &now}
	active.Normalize()
	if active.TrashedAt != nil || active.Kind != KindFile {
		t.Errorf("active after Normalize = %+v", active)
	}

	trashed := FileRecord{State: StateTrashed, TrashedAt: &now}
	trashed.Normalize()
	if trashed.TrashedAt == nil {
		t.Error("Normalize dropped trashed_at of a trashed record")
	}
}

func TestCloneIsDeep(t *testing.T) {
	size := int64(1)
	now := time.Now()
	orig := FileRecord{
		Size:      &size,
		TrashedAt: &now,
		Share:     &ShareInfo{Recipients: []string{"a@example.com"}},
	}

	c := orig.Clone()
	*c.Size = 2
	c.Share.Recipients[0] = "b@example.com"
	*c.TrashedAt = now.Add(time.Hour)

	if *orig.Size != 1 || orig.Share.Recipients[0] != "a@example.com" || !orig.TrashedAt.Equal(now) {
		t.Errorf("Clone shares memory with original: %+v", orig)
	}
}

func TestParentAndJoinPath(t *testing.T) {
	tests := []struct{ path, parent string }{
		{"/Documents/a.pdf", "/Documents"},
		{"/a.pdf", "/"},
		{"/A/B/c", "/A/B"},
	}
	for _, tt := range tests {
		r := FileRecord{Path: tt.path}
		if got := r.Parent(); got != tt.parent {
			t.Errorf("Parent(%q) = %q, want %q", tt.path, got, tt.parent)
		}
	}

	if got := JoinPath("/", "x"); got != "/x" {
		t.Errorf("JoinPath(/, x) = %q", got)
	}
	if got := JoinPath("/A/", "x"); got != "/A/x" {
		t.Errorf("JoinPath(/A/, x) = %q", got)
	}
}
