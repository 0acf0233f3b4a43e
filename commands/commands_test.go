package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"cheatsheet": func() int { return Execute(os.Args[1:]) },
	}))
}

func TestCommands(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
	})
}

func newTestBuilder(t *testing.T, files map[string]string) (*commandsBuilder, *bytes.Buffer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	var stdout, stderr bytes.Buffer
	b := newCommandsBuilder(&stdout, &stderr, []string{"CHEATSHEET_DESCRIPTION=From env"})
	b.fs = fs
	return b, &stdout
}

func TestConfigCommandFromMemFs(t *testing.T) {
	b, stdout := newTestBuilder(t, map[string]string{
		"/site/config.yaml": `
title: Notes
theme:
  sidebarSections:
    - label: General
      basePath: /general
      items:
        - label: Topics
          relativeLink: /
`,
	})

	root := b.build()
	root.SetArgs([]string{"config", "--source", "/site", "--config", "config.yaml", "--format", "yaml"})
	require.NoError(t, root.Execute())

	out := stdout.String()
	require.Contains(t, out, "title: Notes\n")
	require.Contains(t, out, "description: From env\n")
	require.Contains(t, out, "basePath: /general/\n")
}

func TestConfigCommandUnknownFormat(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	root := b.build()
	root.SetArgs([]string{"config", "--format", "ini"})
	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "json, toml, yaml")
}

func TestBuiltinSite(t *testing.T) {
	b, stdout := newTestBuilder(t, nil)

	root := b.build()
	root.SetArgs([]string{"sidebar", "--source", "/empty", "--base-path", "/notes/"})
	require.NoError(t, root.Execute())

	out := stdout.String()
	require.Contains(t, out, "General (expanded) #general\n")
	require.Contains(t, out, "Golang (collapsed) #golang\n")
	require.Contains(t, out, "/notes/golang/special-syntaxes")
}

func TestSidebarSection(t *testing.T) {
	b, stdout := newTestBuilder(t, nil)

	root := b.build()
	root.SetArgs([]string{"sidebar", "--source", "/empty", "--section", "General"})
	require.NoError(t, root.Execute())
	require.Contains(t, stdout.String(), "General (expanded) #general\n")
	require.NotContains(t, stdout.String(), "Golang")

	b, _ = newTestBuilder(t, nil)
	root = b.build()
	root.SetArgs([]string{"sidebar", "--source", "/empty", "--section", "Rust"})
	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), `"Rust"`)
}

func TestBuiltinSiteEnv(t *testing.T) {
	b, stdout := newTestBuilder(t, nil)

	root := b.build()
	root.SetArgs([]string{"config", "--source", "/empty", "--format", "yaml"})
	require.NoError(t, root.Execute())

	out := stdout.String()
	require.Contains(t, out, "title: Cheat Sheet\n")
	require.Contains(t, out, "description: From env\n")
	require.Contains(t, out, "basePath: /cheatsheet/\n")
}
