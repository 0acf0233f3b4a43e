package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/sunwei/cheatsheet/sitefs"
	"github.com/sunwei/cheatsheet/source"
)

func (b *commandsBuilder) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that every sidebar link points to a document",
		Long: `Check indexes the content dir and resolves every sidebar link
against it. It fails when a link has no document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, logger, err := b.loadSite(cmd)
			if err != nil {
				return err
			}

			build := s.Build()
			fs, err := sitefs.NewFrom(b.fs, s.WorkingDir(), build.ContentDir)
			if err != nil {
				return err
			}

			var gitInfo *source.GitInfo
			if s.TrackLastUpdated() {
				gitInfo, err = source.NewGitInfo(fs.WorkingDir, fs.AbsContentDir)
				if err != nil {
					logger.Infof("no Git information, using file modification times: %s", err)
					gitInfo = nil
				}
			}

			idx, err := source.NewIndex(source.IndexConfig{
				Fs:          fs.Content,
				IgnoreFiles: build.IgnoreFiles,
				GitInfo:     gitInfo,
				Logger:      logger,
			})
			if err != nil {
				return err
			}

			report, err := s.CheckLinks(cmd.Context(), idx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, l := range report.Links {
				switch {
				case l.Broken():
					fmt.Fprintf(w, "broken\t%s\t%s\n", l.Resolved, l.Label)
				case s.TrackLastUpdated():
					fmt.Fprintf(w, "ok\t%s\t%s\t%s\n", l.Resolved, l.File.Path(), l.LastModified.Format(time.RFC3339))
				default:
					fmt.Fprintf(w, "ok\t%s\t%s\n", l.Resolved, l.File.Path())
				}
			}
			for _, f := range report.Orphans {
				logger.Infof("%s is not linked from the sidebar", f.Path())
			}

			if report.Broken > 0 {
				return fmt.Errorf("%d broken sidebar links", report.Broken)
			}
			return nil
		},
	}
}
