// Package navigation contains the sidebar tree and the social links shown in
// the site header.
package navigation

import (
	"github.com/sunwei/cheatsheet/common/collections"
	"github.com/sunwei/cheatsheet/common/paths"
)

var _ collections.Order = Section{}

// Item is a single sidebar link.
type Item struct {
	Label string `mapstructure:"label" json:"label" toml:"label" yaml:"label"`

	// RelativeLink is relative to the enclosing section's BasePath.
	RelativeLink string `mapstructure:"relativeLink" json:"relativeLink" toml:"relativeLink" yaml:"relativeLink"`
}

// Section is a labeled, collapsible group of sidebar links.
type Section struct {
	Label              string `mapstructure:"label" json:"label" toml:"label" yaml:"label"`
	Items              []Item `mapstructure:"items" json:"items" toml:"items" yaml:"items"`
	CollapsedByDefault bool   `mapstructure:"collapsedByDefault" json:"collapsedByDefault" toml:"collapsedByDefault" yaml:"collapsedByDefault"`

	// BasePath is prepended to each item's relative link.
	BasePath string `mapstructure:"basePath" json:"basePath" toml:"basePath" yaml:"basePath"`

	ordinal int `hash:"ignore"`
}

// Ordinal is the zero-based display position of the section in the sidebar.
func (s Section) Ordinal() int {
	return s.ordinal
}

// Resolve returns the link of item relative to the site root.
func (s Section) Resolve(item Item) string {
	return paths.JoinLink(s.BasePath, item.RelativeLink)
}

// Links returns the resolved links of all items, in display order.
func (s Section) Links() []string {
	links := make([]string, len(s.Items))
	for i, item := range s.Items {
		links[i] = s.Resolve(item)
	}
	return links
}

// Sidebar is the ordered list of sections, top to bottom.
type Sidebar []Section

// Clone returns a deep copy of sb.
func (sb Sidebar) Clone() Sidebar {
	if sb == nil {
		return nil
	}
	c := make(Sidebar, len(sb))
	for i, s := range sb {
		s.Items = append([]Item(nil), s.Items...)
		c[i] = s
	}
	return c
}

// Normalize returns a deep copy of sb with ordinals assigned from the
// authored order and a trailing slash added to every section base path.
// An empty base path becomes "/".
// The order of sections and items is never changed.
func (sb Sidebar) Normalize() Sidebar {
	c := sb.Clone()
	for i := range c {
		c[i].ordinal = i
		c[i].BasePath = paths.AddTrailingSlash(c[i].BasePath)
	}
	return c
}

// Link is a resolved sidebar entry.
type Link struct {
	Section string
	Label   string

	// Resolved is the item link joined with the section base path.
	Resolved string

	// Position of the section and of the item within it.
	SectionIndex int
	ItemIndex    int
}

// Links flattens the sidebar into resolved links, in display order.
func (sb Sidebar) Links() []Link {
	var links []Link
	for i, s := range sb {
		for j, item := range s.Items {
			links = append(links, Link{
				Section:      s.Label,
				Label:        item.Label,
				Resolved:     s.Resolve(item),
				SectionIndex: i,
				ItemIndex:    j,
			})
		}
	}
	return links
}

// ByLabel returns the first section with the given label.
func (sb Sidebar) ByLabel(label string) (Section, bool) {
	for _, s := range sb {
		if s.Label == label {
			return s, true
		}
	}
	return Section{}, false
}
