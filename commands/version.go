package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sunwei/cheatsheet/common/buildinfo"
)

func (b *commandsBuilder) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cheatsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.Get()
			fmt.Fprintln(cmd.OutOrStdout(), info)
			if b.verbose {
				for _, d := range info.Deps {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", d.Path, d.Version)
				}
			}
			return nil
		},
	}
}
