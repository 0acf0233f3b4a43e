package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/sunwei/cheatsheet/parser/metadecoders"
)

// ValidConfigFileExtensions lists the supported config file extensions in
// lookup order.
var ValidConfigFileExtensions = []string{"toml", "yaml", "yml", "json"}

// IsValidConfigFilename reports whether filename has a supported extension.
func IsValidConfigFilename(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, valid := range ValidConfigFileExtensions {
		if ext == valid {
			return true
		}
	}
	return false
}

func loadConfigFromFile(fs afero.Fs, filename string) (map[string]any, error) {
	if !IsValidConfigFilename(filename) {
		return nil, fmt.Errorf("%q: unsupported config format, expected one of %v", filename, ValidConfigFileExtensions)
	}
	m, err := metadecoders.Default.UnmarshalFileToMap(fs, filename)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// FromFile loads the configuration from the given filename.
func FromFile(fs afero.Fs, filename string) (Provider, error) {
	m, err := loadConfigFromFile(fs, filename)
	if err != nil {
		return nil, err
	}
	return NewFrom(m), nil
}
