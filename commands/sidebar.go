package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (b *commandsBuilder) newSidebarCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "sidebar",
		Short: "Print the sidebar with resolved links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := b.loadSite(cmd)
			if err != nil {
				return err
			}

			sections := s.Sections()
			only := -1
			if section != "" {
				sec, found := sections.ByLabel(section)
				if !found {
					return fmt.Errorf("no sidebar section labelled %q", section)
				}
				only = sec.Ordinal()
			}

			w := cmd.OutOrStdout()
			for _, l := range s.Links() {
				if only >= 0 && l.SectionIndex != only {
					continue
				}
				if l.ItemIndex == 0 {
					sec := sections[l.SectionIndex]
					state := "expanded"
					if sec.CollapsedByDefault {
						state = "collapsed"
					}
					fmt.Fprintf(w, "%s (%s) #%s\n", sec.Label, state, l.SectionID)
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\n", l.Label, l.Resolved, l.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "only print the section with this label")

	return cmd
}
