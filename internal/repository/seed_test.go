package repository

import (
	"os"
	"path/filepath"
	"testing"

	"cloudbox/internal/domain"
)

func TestLoadDefaultSeed(t *testing.T) {
	seed, err := LoadSeed("")
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}
	if len(seed.Files) != 5 {
		t.Fatalf("len(Files) = %d, want 5", len(seed.Files))
	}
	if seed.User.Name != "Alex Johnson" {
		t.Errorf("User.Name = %q", seed.User.Name)
	}

	var trashed int
	for _, f := range seed.Files {
		if f.Trashed() {
			trashed++
		}
		if f.IsFolder() && f.Size != nil {
			t.Errorf("folder %q has size", f.Name)
		}
	}
	if trashed != 1 {
		t.Errorf("trashed = %d, want 1", trashed)
	}
}

func TestParseSeedValidates(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad kind", "files:\n  - id: \"1\"\n    kind: link\n"},
		{"bad state", "files:\n  - id: \"1\"\n    state: archived\n"},
		{"bad yaml", "files: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSeed([]byte(tt.data)); err == nil {
				t.Error("ParseSeed() error = nil")
			}
		})
	}
}

func TestLoadSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := "files:\n  - id: \"a\"\n    name: Only\n    kind: folder\n    size: 10\n    path: /Only\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	seed, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}
	f := seed.Files[0]
	if f.Size != nil || f.State != domain.StateActive {
		t.Errorf("record not normalized: %+v", f)
	}

	if _, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadSeed() with missing file succeeded")
	}
}
