// Package testsupport builds throwaway media library trees for tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteMedia creates a media file at path with the given content, creating
// parent directories as needed.
func WriteMedia(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteSidecar marshals record as the folder's metadata.json.
func WriteSidecar(t testing.TB, dir string, record map[string]any) {
	t.Helper()
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal sidecar for %s: %v", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "metadata.json"), data, 0o644); err != nil {
		t.Fatalf("write sidecar in %s: %v", dir, err)
	}
}

// WriteRawSidecar writes arbitrary bytes as the folder's metadata.json,
// for malformed-JSON cases.
func WriteRawSidecar(t testing.TB, dir string, raw string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "metadata.json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write sidecar in %s: %v", dir, err)
	}
}
