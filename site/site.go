package site

import (
	"fmt"

	"github.com/mitchellh/hashstructure"
	"github.com/sunwei/cheatsheet/common/loggers"
	"github.com/sunwei/cheatsheet/common/maps"
	"github.com/sunwei/cheatsheet/config"
	"github.com/sunwei/cheatsheet/helpers"
	"github.com/sunwei/cheatsheet/navigation"
)

// Site is the constructed, read-only site configuration.
// All accessors return copies; a Site never changes after New returns.
type Site struct {
	conf       Config
	build      BuildConfig
	workingDir string

	pathSpec *helpers.PathSpec
	logger   loggers.Logger
}

// Option configures New.
type Option func(*options)

type options struct {
	build      BuildConfig
	workingDir string
	logger     loggers.Logger
}

// WithBuildConfig sets the build settings. The default is DefaultBuildConfig.
func WithBuildConfig(b BuildConfig) Option {
	return func(o *options) {
		o.build = b
	}
}

// WithWorkingDir sets the project dir the content dir is relative to.
func WithWorkingDir(dir string) Option {
	return func(o *options) {
		o.workingDir = dir
	}
}

// WithLogger sets the logger.
func WithLogger(l loggers.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New builds the Site from c. The literal is copied, so changing it
// afterwards has no effect on the Site. Section base paths get a trailing
// slash and an empty site base path becomes "/".
func New(c Config, opts ...Option) (*Site, error) {
	o := options{
		build:  DefaultBuildConfig(),
		logger: loggers.NewDefault(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	conf := c.clone()
	if conf.BasePath == "" {
		conf.BasePath = "/"
	}
	o.logger.Process("newSite", "normalize sidebar sections")
	conf.Theme.SidebarSections = conf.Theme.SidebarSections.Normalize()

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	ps, err := helpers.NewPathSpec(config.NewFrom(maps.Params{
		"basePath":          conf.BasePath,
		"cleanUrls":         conf.CleanURLs,
		"titleCaseStyle":    o.build.TitleCaseStyle,
		"removePathAccents": o.build.RemovePathAccents,
		"enableEmoji":       o.build.EnableEmoji,
	}))
	if err != nil {
		return nil, err
	}

	o.build.IgnoreFiles = helpers.UniqueStringsReuse(append([]string(nil), o.build.IgnoreFiles...))

	o.logger.Process("newSite", fmt.Sprintf("%q with %d sidebar sections", conf.Title, len(conf.Theme.SidebarSections)))

	return &Site{
		conf:       conf,
		build:      o.build,
		workingDir: o.workingDir,
		pathSpec:   ps,
		logger:     o.logger,
	}, nil
}

// Config returns a copy of the normalized configuration.
func (s *Site) Config() Config {
	return s.conf.clone()
}

// Build returns a copy of the build settings.
func (s *Site) Build() BuildConfig {
	b := s.build
	b.IgnoreFiles = append([]string(nil), b.IgnoreFiles...)
	return b
}

func (s *Site) WorkingDir() string { return s.workingDir }

func (s *Site) Title() string          { return s.conf.Title }
func (s *Site) Description() string    { return s.conf.Description }
func (s *Site) BasePath() string       { return s.conf.BasePath }
func (s *Site) CleanURLs() bool        { return s.conf.CleanURLs }
func (s *Site) TrackLastUpdated() bool { return s.conf.TrackLastUpdated }

// Sections returns the sidebar sections in display order.
func (s *Site) Sections() navigation.Sidebar {
	return s.conf.Theme.SidebarSections.Clone()
}

// SocialLinks returns the social links in display order.
func (s *Site) SocialLinks() []navigation.SocialLink {
	return s.conf.clone().Theme.SocialLinks
}

// URL returns the URL the generator emits for a resolved sidebar link.
func (s *Site) URL(link string) string {
	return s.pathSpec.RelURL(link)
}

// Link is a resolved sidebar entry ready for display.
type Link struct {
	navigation.Link

	// URL includes the site base path and honors clean URLs.
	URL string

	// SectionID is the anchor of the entry's section, derived from its label.
	SectionID string
}

// Links returns every sidebar entry in display order. Items without a label
// get one derived from their link.
func (s *Site) Links() []Link {
	nlinks := s.conf.Theme.SidebarSections.Links()
	links := make([]Link, len(nlinks))
	for i, l := range nlinks {
		if l.Label == "" {
			l.Label = s.pathSpec.LabelFromLink(l.Resolved)
		}
		l.Label = s.pathSpec.Label(l.Label)
		links[i] = Link{Link: l, URL: s.URL(l.Resolved), SectionID: s.pathSpec.URLize(l.Section)}
	}
	return links
}

// Hash returns a fingerprint of the configuration. Equal configurations,
// including sidebar order, give equal hashes.
func (s *Site) Hash() (uint64, error) {
	return hashstructure.Hash(s.conf, nil)
}
