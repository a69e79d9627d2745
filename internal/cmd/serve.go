package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/tailview/internal/app"
)

func newServeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the log viewer page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Serve(cmd.Context(), optionsFrom(v))
		},
	}
}
