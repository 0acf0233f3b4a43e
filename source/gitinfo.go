package source

import (
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/bep/gitmap"
)

// GitInfo maps content documents to the date of the last commit touching them.
type GitInfo struct {
	// Content dir relative to the repository top level, slash separated.
	contentDir string
	files      gitmap.GitMap
}

// NewGitInfo reads the Git log of the repository containing absContentDir.
func NewGitInfo(workingDir, absContentDir string) (*GitInfo, error) {
	repo, err := gitmap.Map(workingDir, "")
	if err != nil {
		return nil, err
	}
	return newGitInfo(repo.TopLevelAbsPath, absContentDir, repo.Files), nil
}

func newGitInfo(topLevelAbsPath, absContentDir string, files gitmap.GitMap) *GitInfo {
	rel, err := filepath.Rel(topLevelAbsPath, absContentDir)
	if err != nil || rel == "." {
		rel = ""
	}
	return &GitInfo{
		contentDir: strings.Trim(filepath.ToSlash(rel), "/"),
		files:      files,
	}
}

// LastModified returns the author date of the last commit touching f.
func (g *GitInfo) LastModified(f *File) (time.Time, bool) {
	info, found := g.files[path.Join(g.contentDir, f.relPath)]
	if !found || info == nil {
		return time.Time{}, false
	}
	return info.AuthorDate, true
}
