package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunwei/cheatsheet/parser/metadecoders"
)

type testSection struct {
	Label    string `json:"label" toml:"label" yaml:"label"`
	BasePath string `json:"basePath" toml:"basePath" yaml:"basePath"`
}

type testConfig struct {
	Title    string        `json:"title" toml:"title" yaml:"title"`
	Sections []testSection `json:"sections" toml:"sections" yaml:"sections"`
}

var testInput = testConfig{
	Title: "Cheat Sheet",
	Sections: []testSection{
		{Label: "Golang", BasePath: "/golang/"},
		{Label: "General", BasePath: "/general/"},
	},
}

func TestInterfaceToConfig(t *testing.T) {
	for _, format := range []metadecoders.Format{metadecoders.JSON, metadecoders.TOML, metadecoders.YAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, InterfaceToConfig(testInput, format, &buf))

			out := buf.String()
			require.Contains(t, out, "Cheat Sheet")
			// Authored order survives encoding.
			require.Less(t, bytes.Index(buf.Bytes(), []byte("Golang")), bytes.Index(buf.Bytes(), []byte("General")), out)

			var back testConfig
			require.NoError(t, metadecoders.Default.UnmarshalTo(buf.Bytes(), format, &back))
			require.Equal(t, testInput, back)
		})
	}
}

func TestInterfaceToConfigErrors(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, InterfaceToConfig(nil, metadecoders.JSON, &buf))
	require.Error(t, InterfaceToConfig(testInput, metadecoders.Format("xml"), &buf))
}
