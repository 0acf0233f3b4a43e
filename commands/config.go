package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sunwei/cheatsheet/common/maps"
	"github.com/sunwei/cheatsheet/config"
	"github.com/sunwei/cheatsheet/minifiers"
	"github.com/sunwei/cheatsheet/output"
	"github.com/sunwei/cheatsheet/publisher"
)

func (b *commandsBuilder) newConfigCmd() *cobra.Command {
	var (
		format string
		minify bool
		target string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved site configuration",
		Long: `Print the site configuration after defaults, environment variables
and flags are applied and the sidebar is normalized.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, found := output.DefaultFormats.GetByName(format)
			if !found {
				return fmt.Errorf("unknown format %q, expected one of %s", format, strings.Join(output.DefaultFormats.Names(), ", "))
			}

			s, logger, err := b.loadSite(cmd)
			if err != nil {
				return err
			}

			m, err := minifiers.New(output.DefaultFormats, config.NewFrom(maps.Params{
				"minify": maps.Params{"minifyOutput": minify},
			}))
			if err != nil {
				return err
			}

			if target == "" {
				return m.Encode(cmd.OutOrStdout(), f, s.Config())
			}

			if !filepath.IsAbs(target) {
				target = filepath.Join(s.WorkingDir(), target)
			}
			if ff, found := output.DefaultFormats.FromFilename(target); !found || ff.Name != f.Name {
				logger.Warnf("%s: the extension does not match the %s format", target, f.Name)
			}
			pub := publisher.NewDestinationPublisher(b.fs, m)
			if err := pub.Publish(publisher.Descriptor{Value: s.Config(), OutputFormat: f, TargetPath: target}); err != nil {
				return err
			}
			logger.Infof("wrote %s", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", output.JSONFormat.Name, "output format: "+strings.Join(output.DefaultFormats.Names(), ", "))
	cmd.Flags().BoolVar(&minify, "minify", false, "minify the output where the format allows it")
	cmd.Flags().StringVarP(&target, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
