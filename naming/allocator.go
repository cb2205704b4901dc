package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Allocator tracks every output name handed out during a run so that two
// source files normalizing to the same base name never collide. It is the
// explicit accumulator threaded through the sequential merge loop; it is
// not safe for concurrent use and does not need to be.
type Allocator struct {
	used map[string]bool
}

// NewAllocator returns an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{used: make(map[string]bool)}
}

// Claim reserves name if it is still free, otherwise the first free
// "stem-N.ext" variant counting up from 1. Claims are deterministic given
// the same sequence of calls.
func (a *Allocator) Claim(name string) string {
	if !a.used[name] {
		a.used[name] = true
		return name
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if !a.used[candidate] {
			a.used[candidate] = true
			return candidate
		}
	}
}

// Claimed reports whether name has already been handed out.
func (a *Allocator) Claimed(name string) bool {
	return a.used[name]
}

// Len returns the number of names claimed so far.
func (a *Allocator) Len() int {
	return len(a.used)
}
