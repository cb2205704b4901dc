// Package config loads and validates mediafold run configuration.
//
// Configuration comes from an optional TOML file with command-line flags
// layered on top. Defaults favor the non-destructive path: copy semantics
// and processing of every supported media type.
package config
