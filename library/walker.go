package library

import (
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one discovered library folder: its sidecar plus the media files
// sitting next to it. Media paths are absolute and sorted.
type Entry struct {
	Dir     string
	Sidecar string
	Media   []string
}

// Options controls discovery.
type Options struct {
	// SidecarName is the per-folder metadata filename to look for.
	SidecarName string
	// SkipDirs holds lowercase directory names that are pruned from the
	// walk entirely (thumbnail folders and the like).
	SkipDirs []string
}

func (o Options) skip(dirName string) bool {
	lower := strings.ToLower(dirName)
	for _, s := range o.SkipDirs {
		if lower == s {
			return true
		}
	}
	return false
}

// Walk yields one Entry per folder under root that contains the sidecar
// file, in lexicographic directory order. Unreadable directories are
// logged and skipped; they never abort the walk. Folders without a sidecar
// are descended into but produce no entry.
func Walk(root string, opts Options, logger *slog.Logger) iter.Seq[Entry] {
	if opts.SidecarName == "" {
		opts.SidecarName = "metadata.json"
	}
	return func(yield func(Entry) bool) {
		walkDir(root, opts, logger, yield)
	}
}

// walkDir returns false when the consumer stopped the iteration.
func walkDir(dir string, opts Options, logger *slog.Logger, yield func(Entry) bool) bool {
	listing, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("skipping unreadable directory", "dir", dir, "error", err)
		return true
	}

	var subdirs []string
	var media []string
	sidecar := ""
	for _, de := range listing {
		name := de.Name()
		if de.IsDir() {
			if opts.skip(name) {
				logger.Debug("pruning directory", "dir", filepath.Join(dir, name))
				continue
			}
			subdirs = append(subdirs, name)
			continue
		}
		if !de.Type().IsRegular() {
			// Symlinks and other specials are not library content.
			continue
		}
		if name == opts.SidecarName {
			sidecar = filepath.Join(dir, name)
			continue
		}
		media = append(media, filepath.Join(dir, name))
	}

	if sidecar != "" {
		entry := Entry{Dir: dir, Sidecar: sidecar, Media: media}
		if !yield(entry) {
			return false
		}
	} else if len(media) > 0 {
		logger.Debug("folder has media but no sidecar", "dir", dir)
	}

	for _, sub := range subdirs {
		if !walkDir(filepath.Join(dir, sub), opts, logger, yield) {
			return false
		}
	}
	return true
}
