// Package library discovers processable folders in a source media library.
//
// A library is a directory tree where each processing unit is a folder
// holding one JSON sidecar (metadata.json by default) and the media files
// it describes. The walker visits directories in lexicographic order and
// yields one Entry per folder that carries a sidecar, so downstream output
// is reproducible given a stable directory listing.
package library
