// Copyright 2019 The Hugo Authors. All rights reserved.
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

// Package sitefs provides the file systems used to read the site project.
package sitefs

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/sunwei/cheatsheet/common/paths"
)

// Fs holds the core filesystems used by the site.
type Fs struct {
	// Source is the project's source file system.
	// Note that this will always be a "plain" Afero filesystem:
	// * afero.OsFs when running in production
	// * afero.MemMapFs for many of the tests.
	Source afero.Fs

	// Content is a read-only file system rooted at the content dir,
	// where the documents the sidebar links to live.
	Content afero.Fs

	WorkingDir    string
	AbsContentDir string
}

// NewFrom creates a new Fs based on the provided Afero Fs.
// Useful for testing.
func NewFrom(fs afero.Fs, workingDir, contentDir string) (*Fs, error) {
	absContentDir := paths.AbsPathify(workingDir, contentDir)

	exists, err := afero.DirExists(fs, absContentDir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("content dir %q does not exist", absContentDir)
	}

	return &Fs{
		Source:        fs,
		Content:       afero.NewBasePathFs(afero.NewReadOnlyFs(fs), absContentDir),
		WorkingDir:    workingDir,
		AbsContentDir: absContentDir,
	}, nil
}
