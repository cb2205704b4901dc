package library_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mediafold/mediafold/internal/testsupport"
	"github.com/mediafold/mediafold/library"
)

func nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func collect(root string, opts library.Options) []library.Entry {
	var entries []library.Entry
	for e := range library.Walk(root, opts, nop()) {
		entries = append(entries, e)
	}
	return entries
}

func TestWalk_DiscoversSidecarFolders(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteSidecar(t, filepath.Join(root, "b-folder"), map[string]any{"title": "b"})
	testsupport.WriteMedia(t, filepath.Join(root, "b-folder", "pic.jpg"), "x")
	testsupport.WriteSidecar(t, filepath.Join(root, "a-folder"), map[string]any{"title": "a"})
	testsupport.WriteMedia(t, filepath.Join(root, "a-folder", "clip.mov"), "y")
	testsupport.WriteMedia(t, filepath.Join(root, "a-folder", "art.png"), "z")

	// No sidecar: descended into but yields nothing.
	testsupport.WriteMedia(t, filepath.Join(root, "c-plain", "loose.png"), "w")

	entries := collect(root, library.Options{})
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Lexicographic discovery order.
	if filepath.Base(entries[0].Dir) != "a-folder" || filepath.Base(entries[1].Dir) != "b-folder" {
		t.Errorf("entries out of order: %s, %s", entries[0].Dir, entries[1].Dir)
	}

	// Media sorted, sidecar excluded from media.
	a := entries[0]
	if len(a.Media) != 2 {
		t.Fatalf("a-folder media = %d, want 2", len(a.Media))
	}
	if filepath.Base(a.Media[0]) != "art.png" || filepath.Base(a.Media[1]) != "clip.mov" {
		t.Errorf("a-folder media unsorted: %v", a.Media)
	}
	if a.Sidecar != filepath.Join(a.Dir, "metadata.json") {
		t.Errorf("sidecar path = %s", a.Sidecar)
	}
}

func TestWalk_NestedFolders(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "2024", "trip")
	testsupport.WriteSidecar(t, deep, map[string]any{"title": "trip"})
	testsupport.WriteMedia(t, filepath.Join(deep, "beach.jpg"), "x")

	entries := collect(root, library.Options{})
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Dir != deep {
		t.Errorf("entry dir = %s, want %s", entries[0].Dir, deep)
	}
}

func TestWalk_PrunesSkipDirs(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "item")
	testsupport.WriteSidecar(t, folder, map[string]any{"title": "item"})
	testsupport.WriteMedia(t, filepath.Join(folder, "full.jpg"), "x")

	// Thumbnails live in a child dir that even carries its own sidecar;
	// pruning must keep it out of the results entirely.
	thumbs := filepath.Join(folder, "Thumbnails")
	testsupport.WriteSidecar(t, thumbs, map[string]any{"title": "thumbs"})
	testsupport.WriteMedia(t, filepath.Join(thumbs, "full_small.jpg"), "t")

	entries := collect(root, library.Options{SkipDirs: []string{"thumbnails"}})
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Dir != folder {
		t.Errorf("entry dir = %s, want %s", entries[0].Dir, folder)
	}
}

func TestWalk_CustomSidecarName(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "item")
	testsupport.WriteMedia(t, filepath.Join(folder, "meta.json"), `{"title":"x"}`)
	testsupport.WriteMedia(t, filepath.Join(folder, "pic.png"), "p")

	entries := collect(root, library.Options{SidecarName: "meta.json"})
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if len(entries[0].Media) != 1 || filepath.Base(entries[0].Media[0]) != "pic.png" {
		t.Errorf("media = %v, want only pic.png", entries[0].Media)
	}
}

func TestWalk_IgnoresDanglingSymlink(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "item")
	testsupport.WriteSidecar(t, folder, map[string]any{"title": "item"})
	testsupport.WriteMedia(t, filepath.Join(folder, "pic.png"), "p")
	if err := os.Symlink(filepath.Join(root, "gone"), filepath.Join(folder, "ghost.png")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	entries := collect(root, library.Options{})
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if len(entries[0].Media) != 1 {
		t.Errorf("media = %v, want symlink excluded", entries[0].Media)
	}
}

func TestWalk_EarlyStop(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		testsupport.WriteSidecar(t, filepath.Join(root, name), map[string]any{"title": name})
	}

	count := 0
	for range library.Walk(root, library.Options{}, nop()) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("iterated %d entries after break, want 1", count)
	}
}
