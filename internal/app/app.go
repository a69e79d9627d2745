package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/five82/tailview/internal/config"
	"github.com/five82/tailview/internal/filter"
	"github.com/five82/tailview/internal/logging"
	"github.com/five82/tailview/internal/server"
	"github.com/five82/tailview/internal/tui"
	"github.com/five82/tailview/internal/viewer"
	"github.com/five82/tailview/internal/watch"
)

// Options configure a tailview run. Zero values defer to the config file.
type Options struct {
	ConfigPath string
	File       string // replaces configured sources with one file
	Listen     string
	Refresh    time.Duration
	LogLevel   string
	LogFile    string // TUI only; logs are discarded otherwise
	NoColor    bool
}

// session is the resolved configuration shared by every surface.
type session struct {
	cfg    config.Config
	viewer *viewer.Viewer
}

func load(opts Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.UseFile(opts.File)
	if opts.Listen != "" {
		cfg.Listen = opts.Listen
	}
	if opts.Refresh > 0 {
		cfg.Refresh = opts.Refresh
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	sources, err := cfg.ResolveSources()
	if err != nil {
		return nil, fmt.Errorf("resolve sources: %w", err)
	}
	v, err := viewer.New(sources)
	if err != nil {
		return nil, fmt.Errorf("init viewer: %w", err)
	}
	return &session{cfg: cfg, viewer: v}, nil
}

func (s *session) paths() []string {
	sources := s.viewer.Sources()
	paths := make([]string, 0, len(sources))
	for _, src := range sources {
		paths = append(paths, src.Path)
	}
	return paths
}

// Serve runs the browser surface until ctx is cancelled.
func Serve(ctx context.Context, opts Options) error {
	s, err := load(opts)
	if err != nil {
		return err
	}
	cleanup, err := logging.Setup(logging.Options{Level: s.cfg.LogLevel, NoColor: opts.NoColor})
	if err != nil {
		return err
	}
	defer cleanup()

	var watcher *watch.Watcher
	if s.cfg.Watch {
		watcher, err = watch.New(s.paths())
		if err != nil {
			// The refresh timer still drives the page.
			log.Warn().Err(err).Msg("file watching disabled")
			watcher = nil
		} else {
			log.Debug().Strs("paths", watcher.Paths()).Msg("watching log files")
			go watcher.Start(ctx)
		}
	}

	log.Info().
		Int("sources", len(s.viewer.Sources())).
		Dur("refresh", s.cfg.Refresh).
		Bool("watch", watcher != nil).
		Msg("tailview starting")

	srv := server.New(s.viewer, server.Options{
		Listen:  s.cfg.Listen,
		Refresh: s.cfg.Refresh,
		Watcher: watcher,
	})
	return srv.Start(ctx)
}

// RunTUI runs the terminal surface until the user quits or ctx is cancelled.
func RunTUI(ctx context.Context, opts Options, source string) error {
	s, err := load(opts)
	if err != nil {
		return err
	}
	cleanup, err := logging.Setup(logging.Options{
		Level:   s.cfg.LogLevel,
		File:    opts.LogFile,
		Discard: true,
	})
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.Run(ctx, tui.Options{
		Viewer:  s.viewer,
		Refresh: s.cfg.Refresh,
		Source:  source,
	})
}

// Once prints a single refresh: display text to out, status to status.
// Read failures are display content, so they do not produce an error.
func Once(opts Options, source string, params filter.Params, out, status io.Writer) error {
	s, err := load(opts)
	if err != nil {
		return err
	}
	cleanup, err := logging.Setup(logging.Options{Level: s.cfg.LogLevel, NoColor: opts.NoColor})
	if err != nil {
		return err
	}
	defer cleanup()

	writeView(s.viewer.Refresh(source, params), out, status)
	return nil
}

// Follow prints a refresh on every interval until ctx is cancelled.
func Follow(ctx context.Context, opts Options, source string, params filter.Params, out, status io.Writer) error {
	s, err := load(opts)
	if err != nil {
		return err
	}
	cleanup, err := logging.Setup(logging.Options{Level: s.cfg.LogLevel, NoColor: opts.NoColor})
	if err != nil {
		return err
	}
	defer cleanup()

	Poll(ctx, s.cfg.Refresh, func() {
		writeView(s.viewer.Refresh(source, params), out, status)
	})
	return nil
}

func writeView(view viewer.View, out, status io.Writer) {
	fmt.Fprint(out, view.Text)
	if view.Text != "" && view.Text[len(view.Text)-1] != '\n' {
		fmt.Fprintln(out)
	}
	if view.Status != "" {
		fmt.Fprintln(status, view.Status)
	}
}

// SourceInfo describes one resolved log source.
type SourceInfo struct {
	Label  string
	Path   string
	Format string
	Strict bool
}

// Sources lists the resolved sources in selection order.
func Sources(opts Options) ([]SourceInfo, error) {
	s, err := load(opts)
	if err != nil {
		return nil, err
	}
	var out []SourceInfo
	for _, src := range s.viewer.Sources() {
		out = append(out, SourceInfo{
			Label:  src.Label,
			Path:   src.Path,
			Format: src.Format.String(),
			Strict: src.Strict,
		})
	}
	return out, nil
}
