package consolidate

import "errors"

// Sentinel errors for package consolidate.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrSidecarParse marks a sidecar that is not valid JSON; the folder
	// is skipped.
	ErrSidecarParse = errors.New("sidecar is not valid JSON")

	// ErrMissingFile marks a media file that vanished between discovery
	// and placement; its record is dropped.
	ErrMissingFile = errors.New("media file missing from disk")

	// ErrNameCollision marks an unexpected pre-existing file at an output
	// path. It indicates a fault in collision resolution and is never
	// silently overwritten.
	ErrNameCollision = errors.New("unexpected file at output path")

	// ErrMetadataWrite marks a failure writing the consolidated metadata
	// document. This is the one fatal error class.
	ErrMetadataWrite = errors.New("write consolidated metadata")
)
