package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/cheatsheet/common/maps"
)

func TestDefaultConfigProvider(t *testing.T) {
	cfg := New()

	cfg.Set("Title", "Cheat Sheet")
	cfg.Set("theme", map[string]any{"Extra": "x"})
	cfg.Set("theme.other", 32)
	cfg.Set("cleanUrls", "true")

	require.Equal(t, "Cheat Sheet", cfg.GetString("title"))
	require.Equal(t, "x", cfg.GetString("theme.extra"))
	require.Equal(t, 32, cfg.GetInt("THEME.OTHER"))
	require.True(t, cfg.GetBool("cleanurls"))
	require.True(t, cfg.IsSet("theme.extra"))
	require.False(t, cfg.IsSet("theme.missing"))
	require.False(t, cfg.IsSet("title.sub"))
	require.Equal(t, maps.Params{"extra": "x", "other": 32}, cfg.GetParams("theme"))
}

func TestDefaultConfigProviderSetDefaults(t *testing.T) {
	cfg := New()
	cfg.Set("basePath", "/docs/")

	cfg.SetDefaults(maps.Params{
		"basePath":    "/",
		"contentDir":  "docs",
		"ignoreFiles": []string{},
	})

	require.Equal(t, "/docs/", cfg.GetString("basepath"))
	require.Equal(t, "docs", cfg.GetString("contentdir"))
	require.Empty(t, cfg.GetStringSlice("ignorefiles"))
}

func TestDefaultConfigProviderGetRootIsCopy(t *testing.T) {
	cfg := NewFrom(maps.Params{"title": "a"})

	root := cfg.Get("").(maps.Params)
	root["title"] = "b"

	require.Equal(t, "a", cfg.GetString("title"))
}

func TestCompositeConfig(t *testing.T) {
	base := NewFrom(maps.Params{"title": "base", "basepath": "/", "theme": maps.Params{"a": 1}})
	layer := FromEnviron(EnvPrefix, []string{
		"CHEATSHEET_BASEPATH=/cheatsheet/",
		"CHEATSHEET_THEME_B=2",
		"HOME=/root",
	})

	cfg := NewCompositeConfig(base, layer)

	require.Equal(t, "base", cfg.GetString("title"))
	require.Equal(t, "/cheatsheet/", cfg.GetString("basePath"))
	require.Equal(t, 2, cfg.GetInt("theme.b"))
	require.False(t, cfg.IsSet("home"))

	merged := cfg.Get("").(maps.Params)
	require.Equal(t, "/cheatsheet/", merged["basepath"])
	require.Equal(t, maps.Params{"a": 1, "b": "2"}, merged["theme"])

	// The base is not touched by the merge.
	require.Equal(t, "/", base.GetString("basepath"))
}

func TestFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/site/config.toml", []byte(`
title = "Cheat Sheet"
basePath = "/cheatsheet/"

[theme]
[[theme.sidebarSections]]
label = "General"
`), 0644))
	require.NoError(t, afero.WriteFile(fs, "/site/config.ini", []byte("x=1"), 0644))

	cfg, err := FromFile(fs, "/site/config.toml")
	require.NoError(t, err)
	require.Equal(t, "Cheat Sheet", cfg.GetString("title"))
	require.Equal(t, "/cheatsheet/", cfg.GetString("basepath"))
	require.True(t, cfg.IsSet("theme.sidebarsections"))

	_, err = FromFile(fs, "/site/config.ini")
	require.Error(t, err)

	_, err = FromFile(fs, "/site/missing.toml")
	require.Error(t, err)
}
