package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sunwei/cheatsheet/parser"
	"github.com/sunwei/cheatsheet/parser/metadecoders"
)

// Format represents an encoding of the resolved site configuration,
// usually written to a file the generator reads.
type Format struct {
	// The Name is used as an identifier, e.g. on the command line.
	Name string `json:"name"`

	// MediaType is the MIME type, used to pick a minifier.
	MediaType string `json:"mediaType"`

	// Suffixes are the file extensions, without the dot, the first being
	// the default.
	Suffixes []string `json:"suffixes"`

	// The encoding used.
	Encoding metadecoders.Format `json:"encoding"`

	// Setting this to a non-zero value will be used as the first sort criteria.
	Weight int `json:"weight"`
}

// Suffix returns the default file extension.
func (f Format) Suffix() string {
	if len(f.Suffixes) == 0 {
		return ""
	}
	return f.Suffixes[0]
}

// Encode writes v to w in this format.
func (f Format) Encode(w io.Writer, v any) error {
	return parser.InterfaceToConfig(v, f.Encoding, w)
}

// Formats is a slice of Format.
type Formats []Format

func (formats Formats) Len() int      { return len(formats) }
func (formats Formats) Swap(i, j int) { formats[i], formats[j] = formats[j], formats[i] }
func (formats Formats) Less(i, j int) bool {
	fi, fj := formats[i], formats[j]
	if fi.Weight == fj.Weight {
		return fi.Name < fj.Name
	}

	if fj.Weight == 0 {
		return true
	}

	return fi.Weight > 0 && fi.Weight < fj.Weight
}

// GetByName gets a format by its identifier name.
func (formats Formats) GetByName(name string) (f Format, found bool) {
	for _, ff := range formats {
		if strings.EqualFold(name, ff.Name) {
			f = ff
			found = true
			return
		}
	}
	return
}

// An ordered list of built-in output formats.
var (
	JSONFormat = Format{
		Name:      "json",
		MediaType: "application/json",
		Suffixes:  []string{"json"},
		Encoding:  metadecoders.JSON,

		// JSON is the default, what the generator reads.
		Weight: 10,
	}

	TOMLFormat = Format{
		Name:      "toml",
		MediaType: "application/toml",
		Suffixes:  []string{"toml"},
		Encoding:  metadecoders.TOML,
	}

	YAMLFormat = Format{
		Name:      "yaml",
		MediaType: "application/yaml",
		Suffixes:  []string{"yaml", "yml"},
		Encoding:  metadecoders.YAML,
	}
)

// DefaultFormats contains the supported output formats, sorted.
var DefaultFormats = Formats{
	JSONFormat,
	TOMLFormat,
	YAMLFormat,
}

func init() {
	sort.Sort(DefaultFormats)
}

// FromFilename gets a Format given a filename, e.g. sidebar.yml.
func (formats Formats) FromFilename(filename string) (f Format, found bool) {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return
	}
	return formats.GetBySuffix(filename[i+1:])
}

// GetBySuffix gets a output format given as suffix, e.g. "yml".
// It will return false if no format could be found, or if the suffix given
// is ambiguous.
// The lookup is case insensitive.
func (formats Formats) GetBySuffix(suffix string) (f Format, found bool) {
	for _, ff := range formats {
		for _, suffix2 := range ff.Suffixes {
			if strings.EqualFold(suffix, suffix2) {
				if found {
					// ambiguous
					found = false
					return
				}
				f = ff
				found = true
			}
		}
	}
	return
}

// GetByNames gets a list of formats given a list of identifiers.
func (formats Formats) GetByNames(names ...string) (Formats, error) {
	var types []Format

	for _, name := range names {
		tpe, ok := formats.GetByName(name)
		if !ok {
			return types, fmt.Errorf("output format with key %q not found", name)
		}
		types = append(types, tpe)
	}
	return types, nil
}

// Names returns the format names, in sort order.
func (formats Formats) Names() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.Name
	}
	return names
}
