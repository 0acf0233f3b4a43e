package navigation

import "sort"

// SocialLink is an icon-linked external URL shown in the site header.
type SocialLink struct {
	IconName string `mapstructure:"iconName" json:"iconName" toml:"iconName" yaml:"iconName"`
	URL      string `mapstructure:"url" json:"url" toml:"url" yaml:"url"`
}

var knownIcons = map[string]bool{
	"discord":   true,
	"facebook":  true,
	"github":    true,
	"instagram": true,
	"linkedin":  true,
	"mastodon":  true,
	"npm":       true,
	"slack":     true,
	"twitter":   true,
	"x":         true,
	"youtube":   true,
}

// IsKnownIcon reports whether name is one of the icons the theme ships.
func IsKnownIcon(name string) bool {
	return knownIcons[name]
}

// KnownIcons returns the sorted icon names.
func KnownIcons() []string {
	names := make([]string, 0, len(knownIcons))
	for name := range knownIcons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
