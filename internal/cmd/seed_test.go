package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mediafold/mediafold/internal/logging"
	"github.com/mediafold/mediafold/library"
)

func TestRunSeed(t *testing.T) {
	dir := t.TempDir()
	runSeed(dir, 8, false)

	entries := 0
	for e := range library.Walk(dir, library.Options{}, logging.NewNop()) {
		entries++
		if len(e.Media) == 0 {
			t.Errorf("seeded folder %s has no media", e.Dir)
		}
		if _, err := library.LoadSidecar(e.Sidecar); err != nil {
			t.Errorf("seeded sidecar does not parse: %v", err)
		}
	}
	if entries != 8 {
		t.Errorf("seeded %d folders with sidecars, want 8", entries)
	}

	// Every fourth folder carries a thumbnails subdirectory.
	thumbs := filepath.Join(dir, "Album 001", "thumbnails", "preview_thumbnail.jpg")
	if _, err := os.Stat(thumbs); err != nil {
		t.Errorf("expected thumbnail fixture: %v", err)
	}
}

func TestRenderCountsPlain(t *testing.T) {
	// Test processes have no tty, so the plain form renders.
	out := renderCounts("Totals", [][2]string{{"Files", "3"}, {"Errors", "0"}})
	if !strings.Contains(out, "Totals") || !strings.Contains(out, "Files: 3") {
		t.Errorf("unexpected plain rendering:\n%s", out)
	}
}
