package helpers

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/afero"
	"github.com/sunwei/cheatsheet/common/text"
)

// MakePath turns s into a path segment, keeping its case:
// runs of white space become a single hyphen and characters not allowed in
// a path are dropped, e.g. "Social Media" -> "Social-Media".
// Accents are removed when removePathAccents is set.
func (p *PathSpec) MakePath(s string) string {
	s = sanitizePathSegment(s)
	if p.RemovePathAccents {
		s = text.RemoveAccentsString(s)
	}
	return s
}

func sanitizePathSegment(s string) string {
	rs := []rune(s)

	var (
		b       strings.Builder
		last    rune
		pending bool
	)
	b.Grow(len(s))

	for i, r := range rs {
		if !isPathRune(r) && !(r == '%' && isPercentEscape(rs[i+1:])) {
			if unicode.IsSpace(r) && b.Len() > 0 && last != '-' {
				pending = true
			}
			continue
		}
		if pending && r != '-' {
			b.WriteByte('-')
		}
		pending = false
		b.WriteRune(r)
		last = r
	}

	return b.String()
}

func isPathRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || strings.ContainsRune(`./\_#+~-`, r)
}

// isPercentEscape reports whether rs starts with the two hex digits of a
// %XX escape.
func isPercentEscape(rs []rune) bool {
	const hex = "0123456789abcdefABCDEF"
	return len(rs) >= 2 && strings.ContainsRune(hex, rs[0]) && strings.ContainsRune(hex, rs[1])
}

// OpenFileForWriting creates or truncates filename, creating its directory
// first if needed.
func OpenFileForWriting(fs afero.Fs, filename string) (afero.File, error) {
	filename = filepath.Clean(filename)
	if err := fs.MkdirAll(filepath.Dir(filename), 0o777); err != nil {
		return nil, err
	}
	return fs.Create(filename)
}
