package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	radix "github.com/armon/go-radix"
	"github.com/gobwas/glob"
	"github.com/spf13/afero"
	"github.com/sunwei/cheatsheet/common/loggers"
	"github.com/sunwei/cheatsheet/common/paths"
)

// ContentExtensions are the document extensions that get indexed.
var ContentExtensions = []string{".md"}

// IndexConfig configures NewIndex.
type IndexConfig struct {
	// Fs is rooted at the content dir.
	Fs afero.Fs

	// IgnoreFiles are glob patterns, matched against the slash separated
	// path relative to the content root, of documents to leave out.
	IgnoreFiles []string

	// GitInfo, if set, provides last modification dates from Git.
	GitInfo *GitInfo

	Logger loggers.Logger
}

// Index holds the content documents keyed by the link they are served under.
// It is read-only after construction and safe for concurrent use.
type Index struct {
	tree    *radix.Tree
	gitInfo *GitInfo
}

// NewIndex walks the content file system and indexes every document.
func NewIndex(cfg IndexConfig) (*Index, error) {
	if cfg.Logger == nil {
		cfg.Logger = loggers.NewDefault()
	}

	ignore := make([]glob.Glob, len(cfg.IgnoreFiles))
	for i, pattern := range cfg.IgnoreFiles {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignoreFiles pattern %q: %w", pattern, err)
		}
		ignore[i] = g
	}

	idx := &Index{
		tree:    radix.New(),
		gitInfo: cfg.GitInfo,
	}

	walker := func(filename string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isContentFile(filename) {
			return nil
		}
		relPath := strings.TrimPrefix(filepath.ToSlash(filename), "/")
		for _, g := range ignore {
			if g.Match(relPath) {
				cfg.Logger.Debugf("ignore %q", relPath)
				return nil
			}
		}
		f := &File{
			relPath: relPath,
			link:    linkForPath(relPath),
			modTime: info.ModTime(),
		}
		if existing, found := idx.tree.Get(f.link); found {
			cfg.Logger.Warnf("%q and %q are both served under %q", existing.(*File).relPath, relPath, f.link)
			return nil
		}
		idx.tree.Insert(f.link, f)
		return nil
	}

	if err := afero.Walk(cfg.Fs, "/", walker); err != nil {
		return nil, fmt.Errorf("failed to index content: %w", err)
	}

	cfg.Logger.Process("NewIndex", fmt.Sprintf("indexed %d documents", idx.tree.Len()))

	return idx, nil
}

func isContentFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range ContentExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return idx.tree.Len()
}

// Lookup finds the document served under link. Authored .md and .html
// extensions are ignored, and a page link also matches a directory index,
// so /golang/tools finds golang/tools/index.md.
func (idx *Index) Lookup(link string) (*File, bool) {
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	if !paths.IsDirLink(link) {
		link = paths.TrimExt(link)
	}
	if v, found := idx.tree.Get(link); found {
		return v.(*File), true
	}
	if !paths.IsDirLink(link) {
		if v, found := idx.tree.Get(link + "/"); found {
			return v.(*File), true
		}
	}
	return nil, false
}

// Files returns the documents whose link starts with prefix, sorted by link.
// The empty prefix returns all documents.
func (idx *Index) Files(prefix string) []*File {
	var files []*File
	idx.tree.WalkPrefix(prefix, func(_ string, v any) bool {
		files = append(files, v.(*File))
		return false
	})
	return files
}

// LastModified returns the Git author date of f when Git information is
// available for it, else the file system modification time.
func (idx *Index) LastModified(f *File) time.Time {
	if idx.gitInfo != nil {
		if t, found := idx.gitInfo.LastModified(f); found {
			return t
		}
	}
	return f.ModTime()
}
