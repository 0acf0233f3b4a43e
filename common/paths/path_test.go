package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinLink(t *testing.T) {
	for _, test := range []struct {
		base, rel, expect string
	}{
		{"/general", "/", "/general/"},
		{"/general/", "/", "/general/"},
		{"/general/", "", "/general/"},
		{"/golang", "/special-syntaxes", "/golang/special-syntaxes"},
		{"/golang/", "special-syntaxes", "/golang/special-syntaxes"},
		{"/golang/", "/tools/", "/golang/tools/"},
		{"/", "/", "/"},
		{"/", "about", "/about"},
	} {
		assert.Equal(t, test.expect, JoinLink(test.base, test.rel), "%q + %q", test.base, test.rel)
	}
}

func TestIsWellFormedBasePath(t *testing.T) {
	assert.True(t, IsWellFormedBasePath("/"))
	assert.True(t, IsWellFormedBasePath("/cheatsheet/"))
	assert.False(t, IsWellFormedBasePath("/cheatsheet"))
	assert.False(t, IsWellFormedBasePath("cheatsheet/"))
	assert.False(t, IsWellFormedBasePath(""))
}

func TestTrimExt(t *testing.T) {
	assert.Equal(t, "/golang/special-syntaxes", TrimExt("/golang/special-syntaxes.html"))
	assert.Equal(t, "/golang/special-syntaxes", TrimExt("/golang/special-syntaxes"))
	assert.Equal(t, "/v1.2/", TrimExt("/v1.2/"))
}

func TestAbsPathify(t *testing.T) {
	assert.Equal(t, filepath.FromSlash("/work/docs"), AbsPathify(filepath.FromSlash("/work"), "docs"))
	assert.Equal(t, filepath.FromSlash("/abs/docs"), AbsPathify(filepath.FromSlash("/work"), filepath.FromSlash("/abs/docs/")))
}
