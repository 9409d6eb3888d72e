package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerRendersAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("planned", slog.String("source", "movie.mkv"), slog.Int("tracks", 4))

	line := buf.String()
	if !strings.Contains(line, "INFO planned") {
		t.Fatalf("unexpected line %q", line)
	}
	if !strings.Contains(line, "source=movie.mkv") || !strings.Contains(line, "tracks=4") {
		t.Fatalf("attrs missing from line %q", line)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "error", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info record emitted at error level: %q", buf.String())
	}
	logger.Error("loud")
	if !strings.Contains(buf.String(), "ERROR loud") {
		t.Fatalf("error record missing: %q", buf.String())
	}
}

func TestUnknownFormatRejected(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("warn") != slog.LevelWarn {
		t.Fatal("warn not parsed")
	}
	if ParseLevel("") != slog.LevelInfo {
		t.Fatal("empty level should default to info")
	}
	if ParseLevel("bogus") != slog.LevelInfo {
		t.Fatal("unknown level should default to info")
	}
}
