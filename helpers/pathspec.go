// Copyright 2016-present The Hugo Authors. All rights reserved.
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

package helpers

import (
	"fmt"
	"strings"

	"github.com/sunwei/cheatsheet/common/paths"
	"github.com/sunwei/cheatsheet/config"
)

// PathSpec holds methods that decides how paths in URLs and files should look like.
type PathSpec struct {
	// The site base path, e.g. /cheatsheet/. Always starts and ends with a slash.
	BasePath string

	// Whether generated links omit the .html extension.
	CleanURLs bool

	RemovePathAccents bool
	EnableEmoji       bool

	titleFunc func(s string) string

	// The config provider to use
	Cfg config.Provider
}

// NewPathSpec creates a new PathSpec from the given config.
func NewPathSpec(cfg config.Provider) (*PathSpec, error) {
	basePath := cfg.GetString("basePath")
	if basePath == "" {
		basePath = "/"
	}
	if !paths.IsWellFormedBasePath(basePath) {
		return nil, fmt.Errorf("basePath %q must start and end with a slash", basePath)
	}

	return &PathSpec{
		BasePath:          basePath,
		CleanURLs:         cfg.GetBool("cleanUrls"),
		RemovePathAccents: cfg.GetBool("removePathAccents"),
		EnableEmoji:       cfg.GetBool("enableEmoji"),
		titleFunc:         GetTitleFunc(cfg.GetString("titleCaseStyle")),
		Cfg:               cfg,
	}, nil
}

// LabelFromLink derives a display label from the last element of link,
// e.g. /golang/special-syntaxes -> Special Syntaxes.
// It returns an empty string for directory roots such as "/".
func (p *PathSpec) LabelFromLink(link string) string {
	link = strings.Trim(paths.TrimExt(link), "/")
	if i := strings.LastIndex(link, "/"); i >= 0 {
		link = link[i+1:]
	}
	if link == "" {
		return ""
	}
	words := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, link)
	return p.titleFunc(words)
}

// Label prepares an authored label for display.
func (p *PathSpec) Label(s string) string {
	if p.EnableEmoji {
		return Emojify(s)
	}
	return s
}
