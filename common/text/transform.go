package text

import (
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentTransformerPool = &sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// RemoveAccents removes all accents from b.
func RemoveAccents(b []byte) []byte {
	t := accentTransformerPool.Get().(transform.Transformer)
	b, _, _ = transform.Bytes(t, b)
	t.Reset()
	accentTransformerPool.Put(t)
	return b
}

// RemoveAccentsString removes all diacritics from s, e.g. "Café" -> "Cafe".
func RemoveAccentsString(s string) string {
	t := accentTransformerPool.Get().(transform.Transformer)
	s, _, _ = transform.String(t, s)
	t.Reset()
	accentTransformerPool.Put(t)
	return s
}
