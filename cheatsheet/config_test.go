package cheatsheet

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunwei/cheatsheet/site"
)

func TestConfigIsValid(t *testing.T) {
	require.NoError(t, Config.Validate())

	s, err := site.New(Config)
	require.NoError(t, err)

	links := s.Links()
	require.Len(t, links, 2)
	require.Equal(t, "/cheatsheet/general/", links[0].URL)
	require.Equal(t, "/cheatsheet/golang/special-syntaxes", links[1].URL)
}
