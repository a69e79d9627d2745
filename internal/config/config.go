package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/tailview/internal/filter"
	"github.com/five82/tailview/internal/logtail"
	"github.com/five82/tailview/internal/viewer"
)

// Config is the resolved tailview configuration.
type Config struct {
	Listen   string
	Refresh  time.Duration
	Window   int
	LogLevel string
	Watch    bool
	Sources  []SourceConfig
}

// SourceConfig is one [[sources]] entry. Either Path or Glob is set.
type SourceConfig struct {
	Label       string `toml:"label"`
	LabelPrefix string `toml:"label_prefix"`
	Path        string `toml:"path"`
	Glob        string `toml:"glob"`
	Format      string `toml:"format"`
	Strict      *bool  `toml:"strict"`
}

const (
	defaultConfigPath = "~/.config/tailview/config.toml"
	defaultListen     = "0.0.0.0:8050"
	defaultRefresh    = 5 * time.Second
	defaultLogLevel   = "info"
	defaultLabel      = "app"
	defaultLogPath    = "app.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Listen:   defaultListen,
		Refresh:  defaultRefresh,
		Window:   logtail.DefaultWindow,
		LogLevel: defaultLogLevel,
		Watch:    true,
		Sources:  []SourceConfig{{Label: defaultLabel, Path: defaultLogPath}},
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Listen    string         `toml:"listen"`
		RefreshMS int            `toml:"refresh_ms"`
		Window    int            `toml:"window"`
		LogLevel  string         `toml:"log_level"`
		Watch     *bool          `toml:"watch"`
		Sources   []SourceConfig `toml:"sources"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if listen := strings.TrimSpace(raw.Listen); listen != "" {
		cfg.Listen = listen
	}
	if raw.RefreshMS > 0 {
		cfg.Refresh = time.Duration(raw.RefreshMS) * time.Millisecond
	}
	if raw.Window > 0 {
		cfg.Window = raw.Window
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	if raw.Watch != nil {
		cfg.Watch = *raw.Watch
	}
	if len(raw.Sources) > 0 {
		cfg.Sources = raw.Sources
	}

	return cfg, nil
}

// UseFile replaces the configured sources with the single file at path.
func (c *Config) UseFile(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}
	c.Sources = []SourceConfig{{Label: filepath.Base(path), Path: path}}
}

// ResolveSources expands paths and globs into viewer sources, in config order.
func (c Config) ResolveSources() ([]viewer.Source, error) {
	var out []viewer.Source
	for i, sc := range c.Sources {
		format, err := filter.ParseFormat(sc.Format)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", sc.name(i), err)
		}
		strict := true
		if sc.Strict != nil {
			strict = *sc.Strict
		}
		base := viewer.Source{Format: format, Strict: strict, Window: c.Window}

		switch {
		case strings.TrimSpace(sc.Glob) != "":
			root, matches, err := expandGlob(sc.Glob)
			if err != nil {
				return nil, fmt.Errorf("source %s: %w", sc.name(i), err)
			}
			for _, m := range matches {
				src := base
				src.Label = sc.LabelPrefix + globLabel(root, m)
				src.Path = m
				out = append(out, src)
			}
		case strings.TrimSpace(sc.Path) != "":
			path, err := expandPath(sc.Path)
			if err != nil {
				return nil, fmt.Errorf("source %s: %w", sc.name(i), err)
			}
			src := base
			src.Label = strings.TrimSpace(sc.Label)
			if src.Label == "" {
				src.Label = filepath.Base(path)
			}
			src.Path = path
			out = append(out, src)
		default:
			return nil, fmt.Errorf("source %s: path or glob is required", sc.name(i))
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no log sources matched")
	}
	return out, nil
}

func (sc SourceConfig) name(i int) string {
	if label := strings.TrimSpace(sc.Label); label != "" {
		return fmt.Sprintf("%q", label)
	}
	return fmt.Sprintf("#%d", i+1)
}

// expandGlob returns the static directory the pattern starts from and the
// files it matches.
func expandGlob(pattern string) (string, []string, error) {
	expanded, err := expandPath(pattern)
	if err != nil {
		return "", nil, err
	}
	matches, err := doublestar.FilepathGlob(expanded, doublestar.WithFilesOnly())
	if err != nil {
		return "", nil, fmt.Errorf("expand glob: %w", err)
	}
	root, _ := doublestar.SplitPattern(filepath.ToSlash(expanded))
	return filepath.FromSlash(root), matches, nil
}

// globLabel names a glob match by its path below root, so equal file names
// in different directories stay distinct.
func globLabel(root, match string) string {
	rel, err := filepath.Rel(root, match)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(match)
	}
	return filepath.ToSlash(rel)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
