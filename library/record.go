package library

import (
	"encoding/json"
	"fmt"
	"os"
)

// Record is one sidecar metadata object. The schema is open: beyond the
// fields this tool writes itself, keys pass through untouched.
type Record map[string]any

// LoadSidecar parses the JSON sidecar at path. Content that is not a JSON
// object is an error; the caller skips the folder and carries on.
func LoadSidecar(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sidecar %s: %w", path, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse sidecar %s: %w", path, err)
	}
	return rec, nil
}

// Clone deep-copies the record so per-file output records never alias the
// folder's shared sidecar data.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}
