package config

const (
	defaultSidecarName = "metadata.json"
	defaultImagesDir   = "images"
	defaultMetadataOut = "metadata.json"
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"

	// ModeAll processes every supported media type.
	ModeAll = "all"
	// ModeImagesOnly restricts the run to image files.
	ModeImagesOnly = "images-only"

	// OpCopy leaves the source library untouched.
	OpCopy = "copy"
	// OpMove removes files from the source as they are placed.
	OpMove = "move"
)

func defaultThumbnailDirs() []string {
	return []string{"thumbnails", ".thumbnails"}
}

func defaultThumbnailMarkers() []string {
	return []string{"thumbnail"}
}
