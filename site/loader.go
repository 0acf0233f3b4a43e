package site

import (
	"bytes"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/sunwei/cheatsheet/common/loggers"
	"github.com/sunwei/cheatsheet/common/maps"
	"github.com/sunwei/cheatsheet/config"
	"github.com/sunwei/cheatsheet/parser"
	"github.com/sunwei/cheatsheet/parser/metadecoders"
)

// ConfigSourceDescriptor describes where to find the config (e.g. config.toml etc.).
type ConfigSourceDescriptor struct {
	Fs afero.Fs

	// Path to the config file to use, e.g. /my/project/config.toml.
	// Relative paths are resolved against WorkingDir.
	Filename string

	// The project's working dir.
	WorkingDir string

	// Environ holds environment variables, as from os.Environ. Variables
	// prefixed with config.EnvPrefix override file settings.
	Environ []string

	// Overrides are applied last, e.g. from command line flags.
	Overrides maps.Params

	Logger loggers.Logger
}

func (d ConfigSourceDescriptor) configFilename() string {
	if filepath.IsAbs(d.Filename) {
		return d.Filename
	}
	return filepath.Join(d.WorkingDir, d.Filename)
}

type configLoader struct {
	cfg config.Provider
	ConfigSourceDescriptor
}

// LoadConfig reads the config file described by d, applies defaults,
// environment variables and overrides, and builds the Site.
func LoadConfig(d ConfigSourceDescriptor) (*Site, error) {
	l := newConfigLoader(d)

	filename, err := l.loadConfig()
	if err != nil {
		return nil, err
	}
	l.Logger.Process("LoadConfig", "loaded "+filename)

	s, err := l.newSite()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// FromConfig builds the Site from c the way LoadConfig builds it from a
// file: c takes the place of the file, so defaults, environment variables
// and overrides apply on top of it. d.Filename is not used.
func FromConfig(c Config, d ConfigSourceDescriptor) (*Site, error) {
	l := newConfigLoader(d)

	m, err := configToParams(c)
	if err != nil {
		return nil, err
	}
	l.cfg = config.NewFrom(m)
	l.Logger.Process("FromConfig", fmt.Sprintf("%q", c.Title))

	return l.newSite()
}

func newConfigLoader(d ConfigSourceDescriptor) *configLoader {
	if d.Logger == nil {
		d.Logger = loggers.NewDefault()
	}
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}
	return &configLoader{ConfigSourceDescriptor: d}
}

// configToParams turns c into the map form a config file decodes to.
func configToParams(c Config) (maps.Params, error) {
	var b bytes.Buffer
	if err := parser.InterfaceToConfig(c, metadecoders.JSON, &b); err != nil {
		return nil, err
	}
	return metadecoders.Default.UnmarshalToMap(b.Bytes(), metadecoders.JSON)
}

func (l *configLoader) newSite() (*Site, error) {
	l.applyConfigDefaults()

	// A single pattern may be written as a plain string.
	l.cfg.Set("ignoreFiles", config.GetStringSlicePreserveString(l.cfg, "ignoreFiles"))

	layer := l.envLayer()
	for k, v := range l.Overrides {
		layer.Set(k, v)
	}
	cfg := config.NewCompositeConfig(l.cfg, layer)

	fc, err := decodeConfig(cfg)
	if err != nil {
		return nil, err
	}

	return New(fc.Config,
		WithBuildConfig(fc.BuildConfig),
		WithWorkingDir(l.WorkingDir),
		WithLogger(l.Logger),
	)
}

// envLayer returns the settings from environment variables with
// config.EnvPrefix. Variables that do not name a setting are skipped.
func (l *configLoader) envLayer() config.Provider {
	layer := config.New()
	known := envKeys()

	env, _ := config.FromEnviron(config.EnvPrefix, l.Environ).Get("").(maps.Params)
	for k, v := range env {
		if !known[k] {
			l.Logger.Debugf("environment: %s%s is not a setting, ignored", config.EnvPrefix, strings.ToUpper(k))
			continue
		}
		layer.Set(k, v)
	}
	return layer
}

// envKeys returns the lower cased names of the settings that can be given
// as a single environment variable: the scalar and string list settings.
// The sidebar and social links cannot.
func envKeys() map[string]bool {
	keys := make(map[string]bool)
	for _, t := range []reflect.Type{reflect.TypeOf(Config{}), reflect.TypeOf(BuildConfig{})} {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
			if name == "" {
				continue
			}
			switch f.Type.Kind() {
			case reflect.Struct, reflect.Map:
				continue
			case reflect.Slice:
				if f.Type.Elem().Kind() != reflect.String {
					continue
				}
			}
			keys[strings.ToLower(name)] = true
		}
	}
	return keys
}

func (l *configLoader) loadConfig() (string, error) {
	filename := l.configFilename()
	cfg, err := config.FromFile(l.Fs, filename)
	if err != nil {
		return filename, err
	}
	l.cfg = cfg
	return filename, nil
}

func (l *configLoader) applyConfigDefaults() {
	defaultSettings := maps.Params{
		"basePath":          "/",
		"cleanUrls":         false,
		"trackLastUpdated":  false,
		"contentDir":        "docs",
		"ignoreFiles":       make([]string, 0),
		"titleCaseStyle":    "AP",
		"removePathAccents": false,
		"enableEmoji":       false,
	}

	l.cfg.SetDefaults(defaultSettings)
}

type fileConfig struct {
	Config      `mapstructure:",squash"`
	BuildConfig `mapstructure:",squash"`
}

func decodeConfig(cfg config.Provider) (fileConfig, error) {
	var fc fileConfig

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &fc,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fc, err
	}

	if err := decoder.Decode(cfg.Get("")); err != nil {
		return fc, fmt.Errorf("%w: %s", ErrShape, err)
	}

	return fc, nil
}
