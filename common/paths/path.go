package paths

import (
	"path"
	"path/filepath"
	"strings"
)

// AbsPathify creates an absolute path if given a working dir and a relative path.
// If already absolute, the path is just cleaned.
func AbsPathify(workingDir, inPath string) string {
	if filepath.IsAbs(inPath) {
		return filepath.Clean(inPath)
	}
	return filepath.Join(workingDir, inPath)
}

// IsWellFormedBasePath reports whether p starts and ends with a slash.
// "/" is the smallest well formed base path.
func IsWellFormedBasePath(p string) bool {
	return strings.HasPrefix(p, "/") && strings.HasSuffix(p, "/")
}

// AddTrailingSlash adds a trailing Unix styled slash (/) if not already
// there.
func AddTrailingSlash(p string) string {
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// JoinLink concatenates a base path and a link relative to it with exactly
// one slash at the seam. A trailing slash on rel is preserved, and an empty
// or "/" rel resolves to the base directory itself.
//
//	JoinLink("/general/", "/")                 -> "/general/"
//	JoinLink("/golang", "/special-syntaxes")   -> "/golang/special-syntaxes"
func JoinLink(base, rel string) string {
	base = strings.TrimSuffix(base, "/")
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return base + "/"
	}
	return base + "/" + rel
}

// IsDirLink reports whether link points at a directory index, i.e. ends with a slash.
func IsDirLink(link string) bool {
	return link == "" || strings.HasSuffix(link, "/")
}

// TrimExt removes the file extension, if any, from the last element of link.
func TrimExt(link string) string {
	ext := path.Ext(link)
	if ext == "" || strings.Contains(ext, "/") {
		return link
	}
	return strings.TrimSuffix(link, ext)
}
