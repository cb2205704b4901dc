package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSidecar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.json")
	content := `{"title": "Sunset", "tags": ["beach", "evening"], "year": 2021}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rec, err := LoadSidecar(path)
	if err != nil {
		t.Fatalf("LoadSidecar: %v", err)
	}
	if rec["title"] != "Sunset" {
		t.Errorf("title = %v, want Sunset", rec["title"])
	}
	tags, ok := rec["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Errorf("tags = %v, want two-element slice", rec["tags"])
	}
}

func TestLoadSidecar_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.json")
	if err := os.WriteFile(path, []byte(`{"title": "trunc`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSidecar(path); err == nil {
		t.Fatal("LoadSidecar accepted truncated JSON")
	}
}

func TestLoadSidecar_Missing(t *testing.T) {
	_, err := LoadSidecar(filepath.Join(t.TempDir(), "metadata.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped ErrNotExist", err)
	}
}

func TestRecord_Clone(t *testing.T) {
	orig := Record{
		"title": "x",
		"nested": map[string]any{
			"tags": []any{"a", "b"},
		},
	}
	clone := orig.Clone()

	clone["title"] = "y"
	clone["nested"].(map[string]any)["tags"].([]any)[0] = "changed"

	if orig["title"] != "x" {
		t.Error("clone shares top-level keys with original")
	}
	if orig["nested"].(map[string]any)["tags"].([]any)[0] != "a" {
		t.Error("clone shares nested slices with original")
	}
}
