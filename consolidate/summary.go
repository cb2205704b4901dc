package consolidate

// Placement records one planned or completed file relocation.
type Placement struct {
	Source string // absolute source path
	Name   string // assigned output filename
}

// Summary reports what a run did, including every non-fatal error class,
// so the caller can show counts and reasons at the end.
type Summary struct {
	FoldersSeen      int // folders with a sidecar
	FoldersMerged    int // folders that contributed at least one record
	FilesPlaced      int
	Thumbnails       int // excluded by the thumbnail predicate
	FilteredOut      int // excluded by images-only mode
	Unsupported      int // unrecognized extensions
	ParseErrors      int
	MissingFiles     int
	CollisionFaults  int
	Records          int
	Degraded         bool // at least one collision fault occurred
	DryRun           bool
	Planned          []Placement
}

// Skipped returns the total number of files excluded for any reason.
func (s Summary) Skipped() int {
	return s.Thumbnails + s.FilteredOut + s.Unsupported
}

// Errors returns the total number of non-fatal errors encountered.
func (s Summary) Errors() int {
	return s.ParseErrors + s.MissingFiles + s.CollisionFaults
}
