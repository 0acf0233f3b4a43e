package minifiers

import (
	"github.com/mitchellh/mapstructure"
	"github.com/sunwei/cheatsheet/config"
	"github.com/tdewolff/minify/v2/json"
)

type minifyConfig struct {
	// Whether to minify the encoded configuration.
	MinifyOutput bool

	DisableJSON bool

	Tdewolff tdewolffConfig
}

type tdewolffConfig struct {
	JSON json.Minifier
}

var defaultTdewolffConfig = tdewolffConfig{
	JSON: json.Minifier{
		Precision: 0,
	},
}

var defaultConfig = minifyConfig{
	Tdewolff: defaultTdewolffConfig,
}

func decodeConfig(cfg config.Provider) (conf minifyConfig, err error) {
	conf = defaultConfig

	if cfg == nil {
		return
	}

	m := cfg.GetParams("minify")
	if m == nil {
		return
	}

	err = mapstructure.WeakDecode(m, &conf)
	return
}
