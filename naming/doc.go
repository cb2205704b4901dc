// Package naming turns arbitrary media filenames into sanitized,
// collision-free output names and classifies files by extension.
//
// Normalize is a pure function: the same input always produces the same
// sanitized name. Uniqueness across a run is the Allocator's job, which
// owns the set of already-claimed names and appends numeric suffixes
// deterministically.
package naming
