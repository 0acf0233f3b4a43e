package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunwei/cheatsheet/common/maps"
	"github.com/sunwei/cheatsheet/config"
)

func newTestPathSpec(t *testing.T, settings maps.Params) *PathSpec {
	t.Helper()
	ps, err := NewPathSpec(config.NewFrom(settings))
	require.NoError(t, err)
	return ps
}

func TestNewPathSpecBasePath(t *testing.T) {
	ps := newTestPathSpec(t, maps.Params{})
	require.Equal(t, "/", ps.BasePath)

	_, err := NewPathSpec(config.NewFrom(maps.Params{"basePath": "/cheatsheet"}))
	require.Error(t, err)
}

func TestRelURL(t *testing.T) {
	for _, test := range []struct {
		name      string
		basePath  string
		cleanURLs bool
		link      string
		expect    string
	}{
		{"root dir", "/", false, "/general/", "/general/"},
		{"page", "/", false, "/golang/special-syntaxes", "/golang/special-syntaxes.html"},
		{"clean page", "/", true, "/golang/special-syntaxes", "/golang/special-syntaxes"},
		{"authored md", "/", true, "/golang/special-syntaxes.md", "/golang/special-syntaxes"},
		{"base path dir", "/cheatsheet/", false, "/general/", "/cheatsheet/general/"},
		{"base path page", "/cheatsheet/", true, "/golang/special-syntaxes", "/cheatsheet/golang/special-syntaxes"},
		{"home", "/cheatsheet/", true, "/", "/cheatsheet/"},
	} {
		t.Run(test.name, func(t *testing.T) {
			ps := newTestPathSpec(t, maps.Params{"basePath": test.basePath, "cleanUrls": test.cleanURLs})
			require.Equal(t, test.expect, ps.RelURL(test.link))
		})
	}
}

func TestURLize(t *testing.T) {
	ps := newTestPathSpec(t, maps.Params{})

	require.Equal(t, "vim-text-editor", ps.URLize("Vim (text editor)"))
	require.Equal(t, "special-syntaxes", ps.URLize("Special Syntaxes"))
	require.Equal(t, "caf%C3%A9", ps.URLize("Café"))

	ps = newTestPathSpec(t, maps.Params{"removePathAccents": true})
	require.Equal(t, "cafe", ps.URLize("Café"))
}

func TestMakePath(t *testing.T) {
	ps := newTestPathSpec(t, maps.Params{})

	for _, test := range []struct {
		in     string
		expect string
	}{
		{"Social Media", "Social-Media"},
		{"  Go   Tools  ", "Go-Tools"},
		{"a - b", "a-b"},
		{"C++ & Rust", "C++-Rust"},
		{"100%25 done", "100%25-done"},
		{"50% off", "50-off"},
	} {
		require.Equal(t, test.expect, ps.MakePath(test.in), test.in)
	}
}

func TestLabelFromLink(t *testing.T) {
	ps := newTestPathSpec(t, maps.Params{})

	require.Equal(t, "Special Syntaxes", ps.LabelFromLink("/golang/special-syntaxes"))
	require.Equal(t, "Tools", ps.LabelFromLink("/golang/tools/"))
	require.Equal(t, "Error Handling", ps.LabelFromLink("error_handling.md"))
	require.Equal(t, "", ps.LabelFromLink("/"))
}

func TestGetTitleFunc(t *testing.T) {
	require.Equal(t, "The Special Syntaxes", GetTitleFunc("")("the special syntaxes"))
	require.Equal(t, "The Go Tool", GetTitleFunc("Go")("the go tool"))
}

func TestLabelEmoji(t *testing.T) {
	ps := newTestPathSpec(t, maps.Params{})
	require.Equal(t, ":rocket: Go", ps.Label(":rocket: Go"))

	ps = newTestPathSpec(t, maps.Params{"enableEmoji": true})
	label := ps.Label(":rocket: Go")
	require.Contains(t, label, "🚀")
	require.NotContains(t, label, ":rocket:")
}

func TestUniqueStringsReuse(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, UniqueStringsReuse([]string{"a", "b", "a"}))
}
