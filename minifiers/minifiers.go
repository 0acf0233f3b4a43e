package minifiers

import (
	"bytes"
	"io"
	"regexp"

	"github.com/sunwei/cheatsheet/config"
	"github.com/sunwei/cheatsheet/output"
	"github.com/tdewolff/minify/v2"
)

// Client wraps a minifier.
type Client struct {
	m *minify.M

	// Whether minification is turned on at all.
	enabled bool
}

// New creates a new Client with the media types of the given output
// formats as the mapping foundation. Settings are read from the "minify"
// section of cfg.
func New(outputFormats output.Formats, cfg config.Provider) (Client, error) {
	conf, err := decodeConfig(cfg)
	if err != nil {
		return Client{}, err
	}

	m := minify.New()

	for _, of := range outputFormats {
		m.Add(of.MediaType, getMinifier(conf, string(of.Encoding)))
	}
	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-|(ld|manifest)\+)?json$`), getMinifier(conf, "json"))

	return Client{m: m, enabled: conf.MinifyOutput}, nil
}

// Enabled reports whether output gets minified.
func (m Client) Enabled() bool {
	return m.enabled
}

// getMinifier returns the appropriate minify.Minifier for the encoding s,
// given the config c.
func getMinifier(c minifyConfig, s string) minify.Minifier {
	switch {
	case s == "json" && !c.DisableJSON:
		return &c.Tdewolff.JSON
	default:
		return noopMinifier{}
	}
}

// noopMinifier implements minify.Minifier [1], but doesn't minify content. This means
// that we can avoid missing minifiers for any MIME types in our minify.M, which
// causes minify to return errors, while still allowing minification to be
// disabled for specific types.
//
// [1]: https://pkg.go.dev/github.com/tdewolff/minify#Minifier
type noopMinifier struct{}

// Minify copies r into w without transformation.
func (m noopMinifier) Minify(_ *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	_, err := io.Copy(w, r)
	return err
}

// Minify minifies r into w using the minifier registered for mediaType.
// Content is copied unchanged when minification is off.
func (m Client) Minify(mediaType string, w io.Writer, r io.Reader) error {
	if !m.enabled {
		_, err := io.Copy(w, r)
		return err
	}
	return m.m.Minify(mediaType, w, r)
}

// Encode encodes v in format f, minified when enabled, and writes it to w.
func (m Client) Encode(w io.Writer, f output.Format, v any) error {
	var buf bytes.Buffer
	if err := f.Encode(&buf, v); err != nil {
		return err
	}
	return m.Minify(f.MediaType, w, &buf)
}
