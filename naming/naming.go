package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/taigrr/colorhash"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents decomposes unicode characters and drops combining marks,
// so "Café" folds to "Cafe" before the ASCII-safe filter runs.
var foldAccents = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize sanitizes a filename for use in the flattened output directory.
// Whitespace becomes a hyphen, characters outside [a-z0-9._-] are dropped,
// accented letters are folded to their base form, and the result is
// lowercased with the extension preserved. A name that sanitizes to nothing
// gets a deterministic generated stem derived from the original name.
func Normalize(name string) string {
	ext := sanitizeExt(filepath.Ext(name))
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	if folded, _, err := transform.String(foldAccents, stem); err == nil {
		stem = folded
	}

	var b strings.Builder
	lastHyphen := false
	for _, r := range stem {
		switch {
		case unicode.IsLetter(r) && r < 128:
			b.WriteRune(unicode.ToLower(r))
			lastHyphen = false
		case unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastHyphen = false
		case r == '.' || r == '_':
			b.WriteRune(r)
			lastHyphen = false
		case r == '-' || unicode.IsSpace(r):
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	out := strings.Trim(b.String(), "-._")
	if out == "" {
		out = generatedStem(name)
	}
	return out + ext
}

// sanitizeExt lowercases an extension and strips anything outside [a-z0-9].
// An extension that sanitizes to a bare dot is dropped entirely.
func sanitizeExt(ext string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(ext) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "." + b.String()
}

// generatedStem produces a stable placeholder stem for names that sanitize
// to nothing. Hashing the original name keeps the output deterministic
// across runs.
func generatedStem(original string) string {
	return fmt.Sprintf("file-%d", colorhash.HashString(original)%100000)
}
