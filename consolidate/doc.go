// Package consolidate flattens a media library into a single output
// directory plus one merged metadata document.
//
// A run is one sequential pass: the library walker yields folders, each
// folder's sidecar is parsed and cloned per surviving media file, files are
// copied or moved under normalized collision-free names, and the ordered
// record collection is written atomically at the end. Per-folder and
// per-file failures are logged and counted, never fatal; only the final
// metadata write aborts the run.
package consolidate
