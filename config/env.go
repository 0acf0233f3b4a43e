package config

import (
	"strings"
)

// EnvPrefix is the prefix of environment variables that override
// configuration keys, e.g. CHEATSHEET_BASEPATH=/docs/.
const EnvPrefix = "CHEATSHEET_"

// FromEnviron creates a Provider from the environment variables in environ
// (as returned by os.Environ) that carry prefix. The remainder of the name is
// lower cased and every underscore becomes a key separator, so
// CHEATSHEET_THEME_X sets theme.x.
func FromEnviron(prefix string, environ []string) Provider {
	cfg := New()
	for _, kv := range environ {
		k, v, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(k, prefix) {
			continue
		}
		key := strings.Trim(strings.TrimPrefix(k, prefix), "_")
		if key == "" {
			continue
		}
		cfg.Set(strings.ReplaceAll(strings.ToLower(key), "_", "."), v)
	}
	return cfg
}
