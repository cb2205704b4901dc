// Package main provides the mediafold command-line interface.
//
// mediafold consolidates a library of media folders and their per-folder
// JSON sidecars into a single flattened output directory plus one merged
// metadata document, with sanitized, collision-free filenames.
//
// The binary supports multiple subcommands:
//   - run: consolidate a library into the flattened output layout
//   - scan: inventory a library without touching anything
//   - verify: check a produced output directory for consistency
//   - seed: generate a sample library for testing
package main
