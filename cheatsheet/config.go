// Package cheatsheet holds the configuration of the cheat sheet site.
package cheatsheet

import (
	"github.com/sunwei/cheatsheet/navigation"
	"github.com/sunwei/cheatsheet/site"
)

// Config is the cheat sheet site. Sections render top to bottom in the order
// written here.
var Config = site.DefineConfig(site.Config{
	Title:            "Cheat Sheet",
	Description:      "Bullet-point notes on the tools I keep forgetting",
	BasePath:         "/cheatsheet/",
	CleanURLs:        true,
	TrackLastUpdated: true,
	Theme: site.ThemeConfig{
		SidebarSections: navigation.Sidebar{
			{
				Label:              "General",
				CollapsedByDefault: false,
				BasePath:           "/general",
				Items: []navigation.Item{
					{Label: "Topics", RelativeLink: "/"},
				},
			},
			{
				Label:              "Golang",
				CollapsedByDefault: true,
				BasePath:           "/golang",
				Items: []navigation.Item{
					{Label: "Special Syntaxes", RelativeLink: "/special-syntaxes"},
				},
			},
		},
		SocialLinks: []navigation.SocialLink{
			{IconName: "github", URL: "https://github.com/sunwei/cheatsheet"},
		},
	},
})
