package site

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/cheatsheet/common/loggers"
	"github.com/sunwei/cheatsheet/navigation"
	"github.com/sunwei/cheatsheet/source"
)

func newTestIndex(t *testing.T, files ...string) *source.Index {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("- note\n"), 0644))
	}
	logger, _ := loggers.NewBufferLogger()
	idx, err := source.NewIndex(source.IndexConfig{Fs: fs, Logger: logger})
	require.NoError(t, err)
	return idx
}

func TestCheckLinks(t *testing.T) {
	golang := golangSection()
	golang.Items = append(golang.Items, navigation.Item{Label: "Tools", RelativeLink: "tools"})

	logger, buf := loggers.NewBufferLogger()
	s := newTestSite(t, newTestConfig(generalSection(), golang), WithLogger(logger))
	idx := newTestIndex(t,
		"/general/index.md",
		"/golang/special-syntaxes.md",
		"/golang/unlisted.md",
	)

	report, err := s.CheckLinks(context.Background(), idx)
	require.NoError(t, err)

	require.Len(t, report.Links, 3)
	require.Equal(t, "/general/", report.Links[0].Resolved)
	require.Equal(t, "general/index.md", report.Links[0].File.Path())
	require.Equal(t, "/golang/special-syntaxes", report.Links[1].Resolved)
	require.False(t, report.Links[1].Broken())
	require.Equal(t, "/golang/tools", report.Links[2].Resolved)
	require.True(t, report.Links[2].Broken())

	require.Equal(t, 1, report.Broken)
	broken := report.BrokenLinks()
	require.Len(t, broken, 1)
	require.Equal(t, "Tools", broken[0].Label)
	require.Contains(t, buf.String(), `no document found`)

	require.Len(t, report.Orphans, 1)
	require.Equal(t, "golang/unlisted.md", report.Orphans[0].Path())

	// Last updated tracking is off.
	require.True(t, report.Links[0].LastModified.IsZero())
}

func TestCheckLinksTrackLastUpdated(t *testing.T) {
	c := newTestConfig(generalSection())
	c.TrackLastUpdated = true
	s := newTestSite(t, c)

	before := time.Now().Add(-time.Minute)
	report, err := s.CheckLinks(context.Background(), newTestIndex(t, "/general/index.md"))
	require.NoError(t, err)

	require.Zero(t, report.Broken)
	require.Empty(t, report.Orphans)
	require.True(t, report.Links[0].LastModified.After(before))
}

func TestCheckLinksKeepsDisplayOrder(t *testing.T) {
	var sections []navigation.Section
	var files []string
	for _, label := range []string{"zsh", "awk", "make", "git", "vim", "jq"} {
		sections = append(sections, navigation.Section{
			Label:    label,
			BasePath: "/" + label,
			Items: []navigation.Item{
				{Label: "Basics", RelativeLink: "basics"},
				{Label: "Advanced", RelativeLink: "advanced"},
			},
		})
		files = append(files, "/"+label+"/basics.md", "/"+label+"/advanced.md")
	}
	s := newTestSite(t, newTestConfig(sections...))

	report, err := s.CheckLinks(context.Background(), newTestIndex(t, files...))
	require.NoError(t, err)
	require.Zero(t, report.Broken)

	require.Len(t, report.Links, 12)
	for i, l := range report.Links {
		require.Equal(t, i/2, l.SectionIndex)
		require.Equal(t, i%2, l.ItemIndex)
		require.Equal(t, sections[i/2].Label, l.Section)
	}
}

func TestCheckLinksCancelled(t *testing.T) {
	s := newTestSite(t, newTestConfig(generalSection(), golangSection()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.CheckLinks(ctx, newTestIndex(t, "/general/index.md"))
	require.ErrorIs(t, err, context.Canceled)
}
