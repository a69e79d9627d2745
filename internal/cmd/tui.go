package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/tailview/internal/app"
)

func newTUICommand(v *viper.Viper) *cobra.Command {
	var source, logFile string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "View logs in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := optionsFrom(v)
			opts.LogFile = logFile
			return app.RunTUI(cmd.Context(), opts, source)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "source label to open (default: first source)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write diagnostics to this file while the terminal is in use")
	return cmd
}
