package helpers

import (
	"net/url"
	"path"
	"strings"

	"github.com/sunwei/cheatsheet/common/paths"
)

// URLize turns s into a lower case, escaped path segment. It is used for
// section anchors, e.g. "Vim (text editor)" -> "vim-text-editor".
func (p *PathSpec) URLize(s string) string {
	s = strings.ToLower(p.MakePath(s))
	if u, err := url.Parse(s); err == nil {
		return u.String()
	}
	return (&url.URL{Path: s}).String()
}

// PrependBasePath prepends the site base path to the given site relative link.
func (p *PathSpec) PrependBasePath(rel string) string {
	if p.BasePath == "" || p.BasePath == "/" {
		return rel
	}
	hadSlash := paths.IsDirLink(rel)
	rel = path.Join(p.BasePath, rel)
	if hadSlash {
		rel = paths.AddTrailingSlash(rel)
	}
	return rel
}

// RelURL turns a resolved sidebar link into the URL the generator emits:
// any authored extension is dropped, .html is added back unless clean URLs
// are enabled, and the site base path is prepended.
// Directory links keep their trailing slash and get no extension.
func (p *PathSpec) RelURL(link string) string {
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	if !paths.IsDirLink(link) {
		link = paths.TrimExt(link)
		if !p.CleanURLs {
			link += ".html"
		}
	}
	return p.PrependBasePath(link)
}
