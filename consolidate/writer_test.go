package consolidate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mediafold/mediafold/library"
)

func TestWriteMetadata(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.json")
	records := []library.Record{
		{"filename": "a.jpg", "file_type": "image"},
		{"filename": "b.mov", "file_type": "video"},
	}

	if err := writeMetadata(path, records); err != nil {
		t.Fatalf("writeMetadata: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Pretty-printed for human inspection.
	if !strings.Contains(string(data), "\n  {") {
		t.Errorf("document not indented:\n%s", data)
	}
	if strings.Index(string(data), "a.jpg") > strings.Index(string(data), "b.mov") {
		t.Error("records out of order")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestWriteMetadata_EmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.json")
	if err := writeMetadata(path, nil); err != nil {
		t.Fatalf("writeMetadata: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty collection = %q, want []", data)
	}
}

func TestWriteMetadata_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.json")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := writeMetadata(path, []library.Record{{"filename": "new.png"}}); err != nil {
		t.Fatalf("writeMetadata: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "new.png") {
		t.Errorf("document not replaced: %q", data)
	}
}

func TestWriteMetadata_UnwritablePathIsWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "metadata.json")
	err := writeMetadata(path, nil)
	if !errors.Is(err, ErrMetadataWrite) {
		t.Errorf("err = %v, want ErrMetadataWrite", err)
	}
}
