package maps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrepareParams(t *testing.T) {
	in := Params{
		"Title": "Cheat Sheet",
		"Theme": map[string]any{
			"SocialLinks": []any{map[string]any{"IconName": "github"}},
		},
		"Nested": map[any]any{"Key": "v"},
	}

	PrepareParams(in)

	require.Equal(t, "Cheat Sheet", in["title"])
	theme, ok := in["theme"].(Params)
	require.True(t, ok)
	links, ok := theme["sociallinks"].([]any)
	require.True(t, ok)
	// Maps inside slices keep their keys.
	require.Equal(t, "github", links[0].(map[string]any)["IconName"])
	require.Equal(t, "v", in.Get("nested", "key"))
}

func TestParamsSet(t *testing.T) {
	p := Params{"theme": Params{"a": 1, "b": 2}, "title": "x"}
	p.Set(Params{"theme": Params{"b": 3}, "basepath": "/docs/"})

	require.Equal(t, Params{"theme": Params{"a": 1, "b": 3}, "title": "x", "basepath": "/docs/"}, p)
}

func TestParamsClone(t *testing.T) {
	p := Params{"theme": Params{"items": []any{"a"}}}
	c := p.Clone()

	c["theme"].(Params)["items"].([]any)[0] = "b"
	c.Set(Params{"title": "changed"})

	require.Equal(t, "a", p.Get("theme", "items").([]any)[0])
	require.Nil(t, p["title"])
}

func TestGetNestedParam(t *testing.T) {
	p := Params{"theme": Params{"sociallinks": "x"}}

	require.Equal(t, "x", GetNestedParam("Theme.SocialLinks", ".", p))
	require.Nil(t, GetNestedParam("theme.missing", ".", p))
}
