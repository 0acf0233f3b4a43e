package site

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sunwei/cheatsheet/common/paths"
	"github.com/sunwei/cheatsheet/navigation"
)

// Validate checks c and returns all violations joined into one error, or nil.
// Every violation is a *FieldError wrapping one of the Err* sentinels.
//
// An empty base path means "/". Relative links are not checked here; see
// Site.CheckLinks.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, fieldErrorf("title", ErrMissingField, ""))
	}
	if c.BasePath != "" && !paths.IsWellFormedBasePath(c.BasePath) {
		errs = append(errs, fieldErrorf("basePath", ErrMalformedBasePath, "%q must start and end with a slash", c.BasePath))
	}

	for i, s := range c.Theme.SidebarSections {
		errs = append(errs, validateSection(fmt.Sprintf("theme.sidebarSections[%d]", i), s)...)
	}

	for i, l := range c.Theme.SocialLinks {
		errs = append(errs, validateSocialLink(fmt.Sprintf("theme.socialLinks[%d]", i), l)...)
	}

	return errors.Join(errs...)
}

func validateSection(field string, s navigation.Section) []error {
	var errs []error
	if strings.TrimSpace(s.Label) == "" {
		errs = append(errs, fieldErrorf(field+".label", ErrMissingField, ""))
	}
	if s.BasePath != "" && !strings.HasPrefix(s.BasePath, "/") {
		errs = append(errs, fieldErrorf(field+".basePath", ErrMalformedBasePath, "%q must start with a slash", s.BasePath))
	}
	if len(s.Items) == 0 {
		errs = append(errs, fieldErrorf(field+".items", ErrEmptySection, ""))
	}
	return errs
}

func validateSocialLink(field string, l navigation.SocialLink) []error {
	var errs []error
	if l.IconName == "" {
		errs = append(errs, fieldErrorf(field+".iconName", ErrMissingField, ""))
	} else if !navigation.IsKnownIcon(l.IconName) {
		errs = append(errs, fieldErrorf(field+".iconName", ErrUnknownIcon, "%q, expected one of %s", l.IconName, strings.Join(navigation.KnownIcons(), ", ")))
	}
	if l.URL == "" {
		errs = append(errs, fieldErrorf(field+".url", ErrMissingField, ""))
	} else if !isAbsURL(l.URL) {
		errs = append(errs, fieldErrorf(field+".url", ErrInvalidURL, "%q", l.URL))
	}
	return errs
}

func isAbsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
