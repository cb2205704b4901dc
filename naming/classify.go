package naming

import (
	"path/filepath"
	"strings"
)

// Category is the coarse file-type bucket recorded in output metadata.
type Category string

const (
	CategoryImage    Category = "image"
	CategoryVideo    Category = "video"
	CategoryAudio    Category = "audio"
	CategoryDocument Category = "document"
	CategoryOther    Category = "other"
)

var imageExts = map[string]bool{
	".avif": true, ".base64": true, ".bmp": true, ".gif": true, ".heic": true,
	".heif": true, ".hif": true, ".icns": true, ".ico": true, ".insp": true,
	".jfif": true, ".jpe": true, ".jpeg": true, ".jpg": true, ".jxl": true,
	".png": true, ".svg": true, ".tif": true, ".tiff": true, ".webp": true,
}

var videoExts = map[string]bool{
	".m4v": true, ".mov": true, ".mp4": true, ".webm": true,
}

var audioExts = map[string]bool{
	".aac": true, ".flac": true, ".m4a": true, ".mp3": true, ".ogg": true, ".wav": true,
}

var documentExts = map[string]bool{
	".doc": true, ".docx": true, ".eddx": true, ".emmx": true, ".html": true,
	".key": true, ".mhtml": true, ".numbers": true, ".pages": true, ".pdf": true,
	".potx": true, ".ppt": true, ".pptx": true, ".txt": true, ".url": true,
	".xls": true, ".xlsx": true,
}

// otherExts covers the remaining supported formats: 3D models, textures,
// design source files, fonts, and camera RAW.
var otherExts = map[string]bool{
	// 3D
	".3ds": true, ".3mf": true, ".dae": true, ".fbx": true, ".glb": true,
	".ifc": true, ".obj": true, ".ply": true, ".stl": true,
	// Textures
	".dds": true, ".exr": true, ".hdr": true, ".tga": true,
	// Design source files
	".afdesign": true, ".afphoto": true, ".afpub": true, ".ai": true,
	".c4d": true, ".cdr": true, ".clip": true, ".dwg": true, ".graffle": true,
	".idml": true, ".indd": true, ".indt": true, ".mindnode": true,
	".principle": true, ".psb": true, ".psd": true, ".psdt": true,
	".pxd": true, ".sketch": true, ".skp": true, ".skt": true,
	".xd": true, ".xmind": true,
	// Fonts
	".otf": true, ".ttc": true, ".ttf": true, ".woff": true,
	// RAW
	".3fr": true, ".arw": true, ".cr2": true, ".cr3": true, ".crw": true,
	".dng": true, ".erf": true, ".mrw": true, ".nef": true, ".nrw": true,
	".orf": true, ".pef": true, ".raf": true, ".raw": true, ".rw2": true,
	".sr2": true, ".srw": true, ".x3f": true,
}

// Classify buckets a filename by extension. Unsupported extensions come
// back as CategoryOther; pair with Supported to tell the two apart.
func Classify(name string) Category {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case imageExts[ext]:
		return CategoryImage
	case videoExts[ext]:
		return CategoryVideo
	case audioExts[ext]:
		return CategoryAudio
	case documentExts[ext]:
		return CategoryDocument
	default:
		return CategoryOther
	}
}

// Supported reports whether the file's extension belongs to any of the
// recognized media format families.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return imageExts[ext] || videoExts[ext] || audioExts[ext] ||
		documentExts[ext] || otherExts[ext]
}
