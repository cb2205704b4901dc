package consolidate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mediafold/mediafold/internal/config"
	"github.com/mediafold/mediafold/library"
	"github.com/mediafold/mediafold/naming"
)

// Consolidator executes one consolidation run. It owns the collision
// allocator and the ordered record collection; neither survives the run.
type Consolidator struct {
	cfg     *config.Config
	log     *slog.Logger
	names   *naming.Allocator
	records []library.Record
	summary Summary
}

// New builds a Consolidator for the given finalized config.
func New(cfg *config.Config, logger *slog.Logger) *Consolidator {
	return &Consolidator{
		cfg:   cfg,
		log:   logger,
		names: naming.NewAllocator(),
	}
}

// Run performs the full pass: walk, merge, materialize, write. The
// returned error is non-nil only for the fatal classes (unusable source
// or output root, metadata write failure); everything else is counted in
// the Summary and logged.
func (c *Consolidator) Run(ctx context.Context) (Summary, error) {
	c.summary = Summary{DryRun: c.cfg.DryRun}
	c.records = nil

	if info, err := os.Stat(c.cfg.SourceRoot); err != nil {
		return c.summary, fmt.Errorf("source root: %w", err)
	} else if !info.IsDir() {
		return c.summary, fmt.Errorf("source root %s is not a directory", c.cfg.SourceRoot)
	}

	if !c.cfg.DryRun {
		if err := os.MkdirAll(c.cfg.ImagesDir(), 0o755); err != nil {
			return c.summary, fmt.Errorf("create output directory: %w", err)
		}
	}

	opts := library.Options{
		SidecarName: c.cfg.SidecarName,
		SkipDirs:    c.cfg.ThumbnailDirs,
	}
	for entry := range library.Walk(c.cfg.SourceRoot, opts, c.log) {
		if err := ctx.Err(); err != nil {
			return c.summary, err
		}
		c.processEntry(entry)
	}

	if !c.cfg.DryRun {
		if err := writeMetadata(c.cfg.MetadataPath(), c.records); err != nil {
			return c.summary, err
		}
		c.log.Info("wrote consolidated metadata",
			"path", c.cfg.MetadataPath(), "records", len(c.records))
	}

	c.summary.Records = len(c.records)
	return c.summary, nil
}

// processEntry merges one library folder. Failures are logged and
// counted; they never propagate.
func (c *Consolidator) processEntry(entry library.Entry) {
	c.summary.FoldersSeen++

	rec, err := library.LoadSidecar(entry.Sidecar)
	if err != nil {
		c.summary.ParseErrors++
		c.log.Error("skipping folder", "dir", entry.Dir,
			"error", fmt.Errorf("%w: %v", ErrSidecarParse, err))
		return
	}

	merged := false
	for _, src := range entry.Media {
		base := filepath.Base(src)

		if c.isThumbnail(base) {
			c.summary.Thumbnails++
			continue
		}
		if !naming.Supported(base) {
			c.summary.Unsupported++
			c.log.Debug("unsupported extension", "file", src)
			continue
		}
		category := naming.Classify(base)
		if c.cfg.Mode == config.ModeImagesOnly && category != naming.CategoryImage {
			c.summary.FilteredOut++
			continue
		}

		// The walk and the placement are separate passes over the disk;
		// a file can vanish in between.
		if _, err := os.Stat(src); err != nil {
			c.summary.MissingFiles++
			c.log.Error("dropping record", "file", src,
				"error", fmt.Errorf("%w: %v", ErrMissingFile, err))
			continue
		}

		name := c.names.Claim(naming.Normalize(base))
		c.summary.Planned = append(c.summary.Planned, Placement{Source: src, Name: name})

		if !c.cfg.DryRun {
			if err := c.place(src, filepath.Join(c.cfg.ImagesDir(), name)); err != nil {
				if errors.Is(err, ErrNameCollision) {
					c.summary.CollisionFaults++
					c.summary.Degraded = true
				} else {
					c.summary.MissingFiles++
				}
				c.log.Error("failed to place file", "file", src, "target", name, "error", err)
				continue
			}
		}

		out := rec.Clone()
		out["filename"] = name
		out["file_type"] = string(category)
		c.records = append(c.records, out)
		c.summary.FilesPlaced++
		merged = true
	}

	if merged {
		c.summary.FoldersMerged++
	}
}

// isThumbnail applies the configured marker predicate to a base filename.
// Thumbnail directories are pruned earlier, by the walker.
func (c *Consolidator) isThumbnail(base string) bool {
	lower := strings.ToLower(base)
	for _, marker := range c.cfg.ThumbnailMarkers {
		if marker != "" && strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// place relocates src to dst under the configured file operation. A
// pre-existing dst with identical content is treated as already placed
// (re-runs after partial failures are safe); differing content is a
// collision fault.
func (c *Consolidator) place(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		same, herr := sameContent(src, dst)
		if herr != nil {
			return herr
		}
		if !same {
			return fmt.Errorf("%w: %s", ErrNameCollision, dst)
		}
		if c.cfg.FileOp == config.OpMove {
			return os.Remove(src)
		}
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if c.cfg.FileOp == config.OpMove {
		return moveFile(src, dst)
	}
	return copyFile(src, dst)
}
