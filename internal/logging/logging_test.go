package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetup_LevelFallsBackToInfo(t *testing.T) {
	cleanup, err := Setup(Options{Level: "loud", Discard: true})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	defer cleanup()

	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Fatalf("GlobalLevel = %v, want %v", got, zerolog.InfoLevel)
	}
}

func TestSetup_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tailview.log")
	cleanup, err := Setup(Options{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.Debug().Str("component", "test").Msg("hello")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"message":"hello"`) {
		t.Fatalf("log file = %q, want JSON message field", data)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("GlobalLevel = %v, want debug", zerolog.GlobalLevel())
	}
}

func TestSetup_BadFileFails(t *testing.T) {
	_, err := Setup(Options{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	if err == nil {
		t.Fatalf("Setup returned nil error, want open failure")
	}
}
