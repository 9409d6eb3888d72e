package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"m4vify/internal/language"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools contains the external binary paths and their log levels.
type Tools struct {
	FFprobe      string `toml:"ffprobe"`
	FFmpeg       string `toml:"ffmpeg"`
	FFmpegLogLvl string `toml:"ffmpeg_loglevel"`
}

// Selection contains the track-selection policy knobs.
type Selection struct {
	Languages      []string `toml:"languages"`
	ForcedLanguage string   `toml:"forced_language"`
}

// Paths contains directory and database locations.
type Paths struct {
	StagingDir string `toml:"staging_dir"`
	HistoryDB  string `toml:"history_db"`
}

// Logging contains log output configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for m4vify.
type Config struct {
	Tools     Tools     `toml:"tools"`
	Selection Selection `toml:"selection"`
	Paths     Paths     `toml:"paths"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/m4vify/config.toml")
}

// Load locates, parses, and validates a configuration file. Path fields in
// the returned config are expanded and normalized. The boolean reports
// whether a file was actually found.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.StagingDir, err = ExpandPath(c.Paths.StagingDir); err != nil {
		return err
	}
	if c.Paths.HistoryDB, err = ExpandPath(c.Paths.HistoryDB); err != nil {
		return err
	}
	c.Selection.Languages = language.NormalizeList(c.Selection.Languages)
	c.Selection.ForcedLanguage = language.Normalize(c.Selection.ForcedLanguage)
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	c.Tools.FFmpegLogLvl = strings.TrimSpace(c.Tools.FFmpegLogLvl)
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Selection.Languages) == 0 {
		return errors.New("config: at least one allowed language required")
	}
	if c.Paths.StagingDir == "" {
		return errors.New("config: staging_dir required")
	}
	if c.Paths.HistoryDB == "" {
		return errors.New("config: history_db required")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("config: unsupported log format %q", c.Logging.Format)
	}
	return nil
}

// LanguageRanking returns the language preference order for a run: the
// allowed list plus the forced language when it is not already present.
// Forced tracks must rank, otherwise ordering would reject them.
func (c *Config) LanguageRanking() []string {
	ranking := append([]string(nil), c.Selection.Languages...)
	forced := c.Selection.ForcedLanguage
	if forced == "" {
		return ranking
	}
	for _, code := range ranking {
		if code == forced {
			return ranking
		}
	}
	return append(ranking, forced)
}

// EnsureDirectories creates the directories a run needs.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.StagingDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.StagingDir, err)
	}
	if dir := filepath.Dir(c.Paths.HistoryDB); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ExpandPath resolves a leading ~ against the user's home directory and
// makes relative paths absolute.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
