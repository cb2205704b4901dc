package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config describes one consolidation run.
type Config struct {
	SourceRoot       string   `toml:"source_root"`
	OutputRoot       string   `toml:"output_root"`
	Mode             string   `toml:"mode"`    // all | images-only
	FileOp           string   `toml:"file_op"` // copy | move
	SidecarName      string   `toml:"sidecar_name"`
	ThumbnailDirs    []string `toml:"thumbnail_dirs"`
	ThumbnailMarkers []string `toml:"thumbnail_markers"`
	LogLevel         string   `toml:"log_level"`
	LogFormat        string   `toml:"log_format"`

	// DryRun and Verbose are flag-only; they never come from the file.
	DryRun  bool `toml:"-"`
	Verbose bool `toml:"-"`
}

// Default returns a config populated with every default value. SourceRoot
// and OutputRoot stay empty; they are required and must come from the file
// or flags.
func Default() *Config {
	return &Config{
		Mode:             ModeAll,
		FileOp:           OpCopy,
		SidecarName:      defaultSidecarName,
		ThumbnailDirs:    defaultThumbnailDirs(),
		ThumbnailMarkers: defaultThumbnailMarkers(),
		LogLevel:         defaultLogLevel,
		LogFormat:        defaultLogFormat,
	}
}

// Load reads the TOML file at path on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := toml.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Finalize normalizes paths and validates option values. Call it after all
// flag overrides have been applied.
func (c *Config) Finalize() error {
	var err error
	if c.SourceRoot, err = expandPath(c.SourceRoot); err != nil {
		return fmt.Errorf("source_root: %w", err)
	}
	if c.OutputRoot, err = expandPath(c.OutputRoot); err != nil {
		return fmt.Errorf("output_root: %w", err)
	}
	if c.SidecarName == "" {
		c.SidecarName = defaultSidecarName
	}
	if len(c.ThumbnailDirs) == 0 {
		c.ThumbnailDirs = defaultThumbnailDirs()
	}
	if len(c.ThumbnailMarkers) == 0 {
		c.ThumbnailMarkers = defaultThumbnailMarkers()
	}
	for i, d := range c.ThumbnailDirs {
		c.ThumbnailDirs[i] = strings.ToLower(strings.TrimSpace(d))
	}
	for i, m := range c.ThumbnailMarkers {
		c.ThumbnailMarkers[i] = strings.ToLower(strings.TrimSpace(m))
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.SourceRoot == "" {
		return errors.New("source_root is required")
	}
	if c.OutputRoot == "" {
		return errors.New("output_root is required")
	}
	switch c.Mode {
	case ModeAll, ModeImagesOnly:
	default:
		return fmt.Errorf("mode: unsupported value %q (want %s or %s)", c.Mode, ModeAll, ModeImagesOnly)
	}
	switch c.FileOp {
	case OpCopy, OpMove:
	default:
		return fmt.Errorf("file_op: unsupported value %q (want %s or %s)", c.FileOp, OpCopy, OpMove)
	}
	if strings.ContainsRune(c.SidecarName, os.PathSeparator) {
		return fmt.Errorf("sidecar_name: %q must be a bare filename", c.SidecarName)
	}
	return nil
}

// ImagesDir returns the flattened media directory inside the output root.
func (c *Config) ImagesDir() string {
	return filepath.Join(c.OutputRoot, defaultImagesDir)
}

// MetadataPath returns the consolidated metadata document path.
func (c *Config) MetadataPath() string {
	return filepath.Join(c.OutputRoot, defaultMetadataOut)
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// expandPath resolves a leading ~ against the current user's home
// directory and cleans the result.
func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
