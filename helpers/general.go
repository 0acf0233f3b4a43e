package helpers

import (
	"strings"

	prose "github.com/jdkato/prose/transform"
	"github.com/kyokomi/emoji/v2"
)

// GetTitleFunc returns a func that can be used to transform a string to
// title case.
//
// The supported styles are
//
// - "Go" (strings.Title)
// - "AP" (see https://www.apstylebook.com/)
// - "Chicago" (see http://www.chicagomanualofstyle.org/home.html)
//
// If an unknown or empty style is provided, AP style is what you get.
func GetTitleFunc(style string) func(s string) string {
	switch strings.ToLower(style) {
	case "go":
		return strings.Title
	case "chicago":
		tc := prose.NewTitleConverter(prose.ChicagoStyle)
		return tc.Title
	default:
		tc := prose.NewTitleConverter(prose.APStyle)
		return tc.Title
	}
}

// Emojify replaces emoji shortcodes such as :rocket: in s.
func Emojify(s string) string {
	if !strings.Contains(s, ":") {
		return s
	}
	return strings.TrimSpace(emoji.Sprint(s))
}

// UniqueStringsReuse returns a slice with any duplicates removed.
// It will modify the input slice.
func UniqueStringsReuse(s []string) []string {
	result := s[:0]
	for i, val := range s {
		var seen bool

		for j := 0; j < i; j++ {
			if s[j] == val {
				seen = true
				break
			}
		}

		if !seen {
			result = append(result, val)
		}
	}
	return result
}
