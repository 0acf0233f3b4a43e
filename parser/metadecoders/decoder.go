// Copyright 2018 The Hugo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadecoders

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/sunwei/cheatsheet/common/text"
	yaml "gopkg.in/yaml.v2"
)

// Decoder provides some configuration options for the decoders.
type Decoder struct{}

// Default is a Decoder in its default configuration.
var Default = Decoder{}

// UnmarshalFileToMap is the same as UnmarshalToMap, but reads the data from
// the given filename.
func (d Decoder) UnmarshalFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	format := FormatFromString(filename)
	if format == "" {
		return nil, fmt.Errorf("%q is not a valid configuration format", filename)
	}

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	m, err := d.UnmarshalToMap(data, format)
	if err != nil {
		var perr *text.PositionError
		if errors.As(err, &perr) {
			perr.Pos.Filename = filename
			return nil, perr
		}
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}

// UnmarshalToMap will unmarshall data in format f into a new map. This is
// what's needed for configuration files.
func (d Decoder) UnmarshalToMap(data []byte, f Format) (map[string]any, error) {
	m := make(map[string]any)
	if data == nil {
		return m, nil
	}

	err := d.UnmarshalTo(data, f, &m)

	return m, err
}

// UnmarshalTo unmarshals data in format f into v.
func (d Decoder) UnmarshalTo(data []byte, f Format, v any) error {
	var err error

	switch f {
	case JSON:
		err = json.Unmarshal(data, v)
	case TOML:
		err = toml.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
		if err != nil {
			return toFileError(f, data, err)
		}

		// To support boolean keys, the YAML package unmarshals maps to
		// map[interface{}]interface{}. Here we recurse through the result
		// and change all maps to map[string]interface{} like we would've
		// gotten from `json`.
		var ptr any
		switch v.(type) {
		case *map[string]any:
			ptr = *v.(*map[string]any)
		case *any:
			ptr = *v.(*any)
		default:
			// Not a map.
		}

		if ptr != nil {
			if mm, changed := stringifyMapKeys(ptr); changed {
				switch v.(type) {
				case *map[string]any:
					*v.(*map[string]any) = mm.(map[string]any)
				case *any:
					*v.(*any) = mm
				}
			}
		}
	default:
		return fmt.Errorf("unmarshal of format %q is not supported", f)
	}

	if err == nil {
		return nil
	}

	return toFileError(f, data, err)
}

// yaml.v2 only reports the line, in messages like "yaml: line 3: ...".
var yamlLineRe = regexp.MustCompile(`line (\d+)`)

func toFileError(f Format, data []byte, err error) error {
	pos, found := errorPosition(f, data, err)
	err = fmt.Errorf("failed to unmarshal %s: %w", f, err)
	if found {
		return text.NewPositionError(pos, err)
	}
	return err
}

func errorPosition(f Format, data []byte, err error) (text.Position, bool) {
	var (
		tomlErr   *toml.DecodeError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &tomlErr):
		row, col := tomlErr.Position()
		return text.Position{LineNumber: row, ColumnNumber: col}, true
	case errors.As(err, &syntaxErr):
		return offsetPosition(data, syntaxErr.Offset), true
	case errors.As(err, &typeErr):
		return offsetPosition(data, typeErr.Offset), true
	case f == YAML:
		m := yamlLineRe.FindStringSubmatch(err.Error())
		if m == nil {
			return text.Position{}, false
		}
		line, _ := strconv.Atoi(m[1])
		return text.Position{LineNumber: line}, line > 0
	}

	return text.Position{}, false
}

// offsetPosition converts a byte offset reported by encoding/json to a line
// and column. The offset counts the offending byte.
func offsetPosition(data []byte, offset int64) text.Position {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 1 {
		return text.Position{LineNumber: 1, ColumnNumber: 1}
	}
	head := data[:offset]
	lineStart := bytes.LastIndexByte(head, '\n') + 1
	return text.Position{
		LineNumber:   bytes.Count(head, []byte{'\n'}) + 1,
		ColumnNumber: len(head) - lineStart,
	}
}

// stringifyMapKeys recurses into in and changes all instances of
// map[interface{}]interface{} to map[string]interface{}. This is useful to
// work around the impedance mismatch between JSON and YAML unmarshaling that's
// described here: https://github.com/go-yaml/yaml/issues/139
//
// Inspired by https://github.com/stripe/stripe-mock, MIT licensed
func stringifyMapKeys(in any) (any, bool) {
	switch in := in.(type) {
	case []any:
		for i, v := range in {
			if vv, replaced := stringifyMapKeys(v); replaced {
				in[i] = vv
			}
		}
	case map[string]any:
		for k, v := range in {
			if vv, changed := stringifyMapKeys(v); changed {
				in[k] = vv
			}
		}
	case map[any]any:
		res := make(map[string]any)
		var (
			ok  bool
			err error
		)
		for k, v := range in {
			var ks string

			if ks, ok = k.(string); !ok {
				ks, err = cast.ToStringE(k)
				if err != nil {
					ks = fmt.Sprintf("%v", k)
				}
			}
			if vv, replaced := stringifyMapKeys(v); replaced {
				res[ks] = vv
			} else {
				res[ks] = v
			}
		}
		return res, true
	}

	return nil, false
}
