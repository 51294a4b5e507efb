package repolist

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStore_LoadMissingFile(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "repos.txt")}

	paths, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error for missing file: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected empty list for missing file, got %v", paths)
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "repos.txt")}

	for _, p := range []string{"/home/dev/a", "/home/dev/b", "/home/dev/a"} {
		if err := s.Save(p); err != nil {
			t.Fatalf("unexpected save error: %v", err)
		}
	}

	paths, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	want := []string{"/home/dev/a", "/home/dev/b"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("expected %v, got %v", want, paths)
	}
}

func TestStore_LoadSkipsBlankAndDuplicateLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.txt")
	content := "/home/dev/a\n\n  \n/home/dev/b\n/home/dev/a\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := &Store{Path: path}
	paths, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"/home/dev/a", "/home/dev/b"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("expected %v, got %v", want, paths)
	}
}
