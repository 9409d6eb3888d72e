package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Tools.FFprobe != "ffprobe" || cfg.Tools.FFmpeg != "ffmpeg" {
		t.Fatalf("unexpected tool defaults: %+v", cfg.Tools)
	}
	if len(cfg.Selection.Languages) != 2 {
		t.Fatalf("unexpected default languages: %v", cfg.Selection.Languages)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[selection]
languages = ["ENG", "jpn", "eng"]
forced_language = "ENG"

[tools]
ffmpeg_loglevel = "warning"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("config file not detected: %q %v", resolved, exists)
	}
	want := []string{"eng", "jpn"}
	if len(cfg.Selection.Languages) != len(want) {
		t.Fatalf("languages = %v, want %v", cfg.Selection.Languages, want)
	}
	for i := range want {
		if cfg.Selection.Languages[i] != want[i] {
			t.Fatalf("languages = %v, want %v", cfg.Selection.Languages, want)
		}
	}
	if cfg.Selection.ForcedLanguage != "eng" {
		t.Fatalf("forced language not normalized: %q", cfg.Selection.ForcedLanguage)
	}
	if cfg.Tools.FFmpegLogLvl != "warning" {
		t.Fatalf("tool override lost: %+v", cfg.Tools)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("missing file reported as existing")
	}
	if cfg.Tools.FFmpeg != "ffmpeg" {
		t.Fatalf("defaults not applied: %+v", cfg.Tools)
	}
}

func TestLanguageRankingIncludesForced(t *testing.T) {
	cfg := Default()
	cfg.Selection.ForcedLanguage = "jpn"
	ranking := cfg.LanguageRanking()
	if ranking[len(ranking)-1] != "jpn" {
		t.Fatalf("forced language missing from ranking: %v", ranking)
	}

	cfg.Selection.ForcedLanguage = "eng"
	ranking = cfg.LanguageRanking()
	if len(ranking) != len(cfg.Selection.Languages) {
		t.Fatalf("already-ranked forced language duplicated: %v", ranking)
	}
}

func TestValidateRejectsEmptyLanguages(t *testing.T) {
	cfg := Default()
	cfg.Selection.Languages = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation failure for empty language list")
	}
}
