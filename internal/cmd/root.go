package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/tailview/internal/app"
)

const envPrefix = "TAILVIEW"

// NewRootCommand builds the tailview command tree. Flags can also be set
// through TAILVIEW_* environment variables (TAILVIEW_LOG_LEVEL, ...).
func NewRootCommand() *cobra.Command {
	v := newViper()

	root := &cobra.Command{
		Use:   "tailview",
		Short: "tailview - live log viewer",
		Long: `tailview shows the last lines of a log file in a browser page or a
terminal, filtered by text and by a date/time range, refreshing on a timer.

Without a subcommand it serves the browser page.

Examples:
  tailview --file /var/log/app.log
  tailview serve --listen 127.0.0.1:8050
  tailview view --query error --start-date 2024-01-02
  tailview tui`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Serve(cmd.Context(), optionsFrom(v))
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default: ~/.config/tailview/config.toml)")
	flags.StringP("file", "f", "", "view a single log file instead of the configured sources")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("listen", "", "listen address for the browser page (default: 0.0.0.0:8050)")
	flags.Duration("refresh", 0, "refresh interval (default: 5s)")
	flags.Bool("no-color", false, "disable colored log output")
	for _, name := range []string{"config", "file", "log-level", "listen", "refresh", "no-color"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newServeCommand(v),
		newTUICommand(v),
		newViewCommand(v),
		newSourcesCommand(v),
	)
	return root
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func optionsFrom(v *viper.Viper) app.Options {
	return app.Options{
		ConfigPath: v.GetString("config"),
		File:       v.GetString("file"),
		Listen:     v.GetString("listen"),
		Refresh:    v.GetDuration("refresh"),
		LogLevel:   v.GetString("log-level"),
		NoColor:    v.GetBool("no-color"),
	}
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
