package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/tailview/internal/app"
)

func newSourcesCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the resolved log sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources, err := app.Sources(optionsFrom(v))
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LABEL\tFORMAT\tSTRICT\tPATH")
			for _, s := range sources {
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", s.Label, s.Format, s.Strict, s.Path)
			}
			return tw.Flush()
		},
	}
}
