package config

const (
	defaultFFprobeBinary  = "ffprobe"
	defaultFFmpegBinary   = "ffmpeg"
	defaultFFmpegLogLevel = "error"
	defaultStagingDir     = "~/.local/share/m4vify/staging"
	defaultHistoryDB      = "~/.local/share/m4vify/history.db"
	defaultLogLevel       = "warn"
	defaultLogFormat      = "console"
)

// defaultLanguages is the allowed-language list applied when none is
// configured.
var defaultLanguages = []string{"eng", "rus"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			FFprobe:      defaultFFprobeBinary,
			FFmpeg:       defaultFFmpegBinary,
			FFmpegLogLvl: defaultFFmpegLogLevel,
		},
		Selection: Selection{
			Languages: append([]string(nil), defaultLanguages...),
		},
		Paths: Paths{
			StagingDir: defaultStagingDir,
			HistoryDB:  defaultHistoryDB,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
