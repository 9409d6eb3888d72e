package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const stubReport = `Input #0, matroska,webm, from 'movie.mkv':
    Stream #0:0: Video: h264 (High), yuv420p, 1920x1080
    Stream #0:1(eng): Audio: ac3, 48000 Hz, 5.1(side), fltp, 640 kb/s
    Stream #0:2(eng): Subtitle: subrip
`

type cliTestEnv struct {
	baseDir    string
	configPath string
	sourcePath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()

	ffprobePath := filepath.Join(base, "bin", "ffprobe")
	writeStub(t, ffprobePath, "#!/bin/sh\ncat <<'EOF'\n"+stubReport+"EOF\n")

	// The stub encoder touches its final argument, the output path.
	ffmpegPath := filepath.Join(base, "bin", "ffmpeg")
	writeStub(t, ffmpegPath, "#!/bin/sh\nfor last; do :; done\n: > \"$last\"\n")

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[tools]
ffprobe = %q
ffmpeg = %q

[selection]
languages = ["eng"]
forced_language = "eng"

[paths]
staging_dir = %q
history_db = %q

[logging]
level = "error"
`,
		ffprobePath,
		ffmpegPath,
		filepath.Join(base, "staging"),
		filepath.Join(base, "history.db"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	sourcePath := filepath.Join(base, "movie.mkv")
	if err := os.WriteFile(sourcePath, []byte("data"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, sourcePath: sourcePath}
}

func writeStub(t *testing.T, path, script string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create stub dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", path, err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIConvertDryRun(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "convert", "--dry-run", env.sourcePath)
	if err != nil {
		t.Fatalf("convert --dry-run: %v", err)
	}
	if !strings.Contains(out, "movie.transcoded.m4v") {
		t.Fatalf("expected output name in plan, got %q", out)
	}
	if !strings.Contains(out, "aac") || !strings.Contains(out, "mov_text") {
		t.Fatalf("expected planned codecs in table, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(env.baseDir, "movie.transcoded.m4v")); !os.IsNotExist(err) {
		t.Fatalf("dry run must not produce output, stat err: %v", err)
	}
}

func TestCLIConvertWritesOutputAndHistory(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env.configPath, "convert", env.sourcePath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	output := filepath.Join(env.baseDir, "movie.transcoded.m4v")
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("expected output file: %v", err)
	}

	out, _, err := runCLI(t, env.configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "completed") || !strings.Contains(out, env.sourcePath) {
		t.Fatalf("expected completed run in history, got %q", out)
	}
}

func TestCLIHistoryEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "No conversions recorded yet.") {
		t.Fatalf("unexpected history output: %q", out)
	}
}

func TestCLIConfigInitAndShow(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "fresh", "config.toml")

	out, _, err := runCLI(t, env.configPath, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected init to report path, got %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample config: %v", err)
	}

	_, _, err = runCLI(t, env.configPath, "config", "init", "--path", target)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected existing-file error, got %v", err)
	}

	out, _, err = runCLI(t, env.configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "forced_language = 'eng'") && !strings.Contains(out, `forced_language = "eng"`) {
		t.Fatalf("expected effective config in output, got %q", out)
	}
}
