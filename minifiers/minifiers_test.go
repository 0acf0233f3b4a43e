package minifiers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunwei/cheatsheet/common/maps"
	"github.com/sunwei/cheatsheet/config"
	"github.com/sunwei/cheatsheet/output"
)

const testJSON = `{
  "title": "Cheat Sheet",
  "theme": {
    "sidebarSections": [ { "label": "General" } ]
  }
}`

func newTestClient(t *testing.T, params maps.Params) Client {
	t.Helper()
	m, err := New(output.DefaultFormats, config.NewFrom(params))
	require.NoError(t, err)
	return m
}

func TestMinifyJSON(t *testing.T) {
	m := newTestClient(t, maps.Params{"minify": maps.Params{"minifyOutput": true}})
	require.True(t, m.Enabled())

	var buf bytes.Buffer
	require.NoError(t, m.Minify(output.JSONFormat.MediaType, &buf, strings.NewReader(testJSON)))
	require.Equal(t, `{"title":"Cheat Sheet","theme":{"sidebarSections":[{"label":"General"}]}}`, buf.String())

	buf.Reset()
	require.NoError(t, m.Minify("application/ld+json", &buf, strings.NewReader(testJSON)))
	require.Equal(t, `{"title":"Cheat Sheet","theme":{"sidebarSections":[{"label":"General"}]}}`, buf.String())
}

func TestMinifyNoop(t *testing.T) {
	yaml := "title: Cheat Sheet\nbasePath: /\n"

	m := newTestClient(t, maps.Params{"minify": maps.Params{"minifyOutput": true}})
	var buf bytes.Buffer
	require.NoError(t, m.Minify(output.YAMLFormat.MediaType, &buf, strings.NewReader(yaml)))
	require.Equal(t, yaml, buf.String())

	m = newTestClient(t, maps.Params{"minify": maps.Params{"minifyOutput": true, "disableJSON": true}})
	buf.Reset()
	require.NoError(t, m.Minify(output.JSONFormat.MediaType, &buf, strings.NewReader(testJSON)))
	require.Equal(t, testJSON, buf.String())
}

func TestMinifyDisabled(t *testing.T) {
	m := newTestClient(t, maps.Params{})
	require.False(t, m.Enabled())

	var buf bytes.Buffer
	require.NoError(t, m.Minify(output.JSONFormat.MediaType, &buf, strings.NewReader(testJSON)))
	require.Equal(t, testJSON, buf.String())
}

func TestEncode(t *testing.T) {
	v := map[string]any{"title": "Cheat Sheet"}

	m := newTestClient(t, maps.Params{"minify": maps.Params{"minifyOutput": "true"}})
	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf, output.JSONFormat, v))
	require.Equal(t, `{"title":"Cheat Sheet"}`, buf.String())
}
