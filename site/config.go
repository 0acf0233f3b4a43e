// Package site holds the site configuration: metadata, sidebar and social
// links, and the immutable Site built from it.
package site

import (
	"github.com/sunwei/cheatsheet/navigation"
)

// Config is the declarative description of the site, typically written as a
// Go literal or loaded from config.toml.
type Config struct {
	Title       string `mapstructure:"title" json:"title" toml:"title" yaml:"title"`
	Description string `mapstructure:"description" json:"description" toml:"description" yaml:"description"`

	// BasePath is the URL path prefix the site is served under.
	// It must start and end with a slash. Empty means "/".
	BasePath string `mapstructure:"basePath" json:"basePath" toml:"basePath" yaml:"basePath"`

	// CleanURLs omits the .html extension in generated links.
	CleanURLs bool `mapstructure:"cleanUrls" json:"cleanUrls" toml:"cleanUrls" yaml:"cleanUrls"`

	// TrackLastUpdated records the last modification time of each page.
	TrackLastUpdated bool `mapstructure:"trackLastUpdated" json:"trackLastUpdated" toml:"trackLastUpdated" yaml:"trackLastUpdated"`

	Theme ThemeConfig `mapstructure:"theme" json:"theme" toml:"theme" yaml:"theme"`
}

// ThemeConfig holds the navigation shown by the theme.
type ThemeConfig struct {
	SidebarSections navigation.Sidebar      `mapstructure:"sidebarSections" json:"sidebarSections" toml:"sidebarSections" yaml:"sidebarSections"`
	SocialLinks     []navigation.SocialLink `mapstructure:"socialLinks" json:"socialLinks" toml:"socialLinks" yaml:"socialLinks"`
}

// DefineConfig registers a site configuration. It returns c unmodified and
// exists so that configuration literals read the same way everywhere:
//
//	var Cheatsheet = site.DefineConfig(site.Config{...})
func DefineConfig(c Config) Config {
	return c
}

func (c Config) clone() Config {
	c.Theme.SidebarSections = c.Theme.SidebarSections.Clone()
	if c.Theme.SocialLinks != nil {
		c.Theme.SocialLinks = append([]navigation.SocialLink(nil), c.Theme.SocialLinks...)
	}
	return c
}

// BuildConfig holds the settings that control how the project is read, as
// opposed to what the site looks like.
type BuildConfig struct {
	// ContentDir holds the documents the sidebar links to, relative to the
	// working dir.
	ContentDir string `mapstructure:"contentDir"`

	// IgnoreFiles are glob patterns of documents to leave out of the content index.
	IgnoreFiles []string `mapstructure:"ignoreFiles"`

	// TitleCaseStyle is used for labels derived from links: AP, Chicago or Go.
	TitleCaseStyle string `mapstructure:"titleCaseStyle"`

	RemovePathAccents bool `mapstructure:"removePathAccents"`

	// EnableEmoji expands shortcodes such as :rocket: in labels.
	EnableEmoji bool `mapstructure:"enableEmoji"`
}

// DefaultBuildConfig returns the build settings used when none are given.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		ContentDir:     "docs",
		TitleCaseStyle: "AP",
	}
}
