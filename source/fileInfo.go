package source

import (
	"path"
	"strings"
	"time"
)

// File is a content document the sidebar can link to.
type File struct {
	// Slash separated path relative to the content root, e.g. golang/special-syntaxes.md.
	relPath string

	link    string
	modTime time.Time
}

// Path gets the relative path including file name and extension. The directory
// is relative to the content root.
func (fi *File) Path() string { return fi.relPath }

// Link is the site relative link the document is served under, e.g.
// /golang/special-syntaxes or /general/ for general/index.md.
func (fi *File) Link() string { return fi.link }

// Dir gets the name of the directory that contains this file. The directory is
// relative to the content root.
func (fi *File) Dir() string {
	dir := path.Dir(fi.relPath)
	if dir == "." {
		return ""
	}
	return dir
}

// Section is first directory below the content root.
// For documents in root, the Section will be empty.
func (fi *File) Section() string {
	if i := strings.Index(fi.relPath, "/"); i > 0 {
		return fi.relPath[:i]
	}
	return ""
}

// Ext returns a file's extension without the leading period (ie. "md").
func (fi *File) Ext() string {
	return strings.TrimPrefix(path.Ext(fi.relPath), ".")
}

// BaseFileName is a filename without extension.
func (fi *File) BaseFileName() string {
	base := path.Base(fi.relPath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// ModTime is the file system modification time.
func (fi *File) ModTime() time.Time { return fi.modTime }

// linkForPath maps a content path to the link it is served under.
//
//	index.md          -> /
//	general/index.md  -> /general/
//	golang/tools.md   -> /golang/tools
func linkForPath(relPath string) string {
	p := strings.TrimSuffix(relPath, path.Ext(relPath))
	if p == "index" {
		return "/"
	}
	if strings.HasSuffix(p, "/index") {
		return "/" + strings.TrimSuffix(p, "index")
	}
	return "/" + p
}
