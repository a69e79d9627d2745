package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/tailview/internal/app"
	"github.com/five82/tailview/internal/filter"
)

func newViewCommand(v *viper.Viper) *cobra.Command {
	var (
		source string
		params filter.Params
		follow bool
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print one filtered refresh to stdout",
		Long: `Print the filtered window of a log source to stdout and the status line
to stderr. Read errors are printed like the page shows them and do not change
the exit status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := optionsFrom(v)
			out, status := cmd.OutOrStdout(), cmd.ErrOrStderr()
			if follow {
				return app.Follow(cmd.Context(), opts, source, params, out, status)
			}
			return app.Once(opts, source, params, out, status)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&source, "source", "s", "", "source label (default: first source)")
	flags.StringVarP(&params.Query, "query", "q", "", "substring to search for")
	flags.BoolVar(&params.CaseSensitive, "case", false, "match the query case-sensitively")
	flags.StringVar(&params.StartDate, "start-date", "", "first date to show (YYYY-MM-DD)")
	flags.StringVar(&params.EndDate, "end-date", "", "last date to show (YYYY-MM-DD)")
	flags.StringVar(&params.StartTime, "start-time", "", "start time of day (HH:MM:SS, pipe format only)")
	flags.StringVar(&params.EndTime, "end-time", "", "end time of day (HH:MM:SS, pipe format only)")
	flags.BoolVar(&follow, "follow", false, "keep refreshing at the refresh interval")
	return cmd
}
