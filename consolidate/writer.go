package consolidate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mediafold/mediafold/library"
)

// writeMetadata serializes the ordered record collection as pretty-printed
// JSON. The document lands via a temp file and an atomic rename so an
// interrupted run never leaves a truncated metadata.json behind.
func writeMetadata(path string, records []library.Record) error {
	if records == nil {
		records = []library.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}
	return nil
}
