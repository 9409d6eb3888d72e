package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"m4vify/internal/history"
	"m4vify/internal/language"
	"m4vify/internal/logging"
	"m4vify/internal/media/ffmpeg"
	"m4vify/internal/media/ffprobe"
	"m4vify/internal/pipeline"
	"m4vify/internal/plan"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		languagesFlag  string
		forcedFlag     string
		verbosity      int
		ffmpegFlag     string
		ffprobeFlag    string
		ffmpegLogLevel string
		dryRun         bool
	)

	cmd := &cobra.Command{
		Use:   "convert <source>...",
		Short: "Convert source files into M4V containers",
		Long: "Probe each source file, select tracks according to the configured language\n" +
			"and codec policy, and remux them into a <basename>.transcoded.m4v container\n" +
			"next to the source. Surround audio is kept and paired with a stereo AAC\n" +
			"downmix; lossy stereo codecs are converted to AAC in place.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if strings.TrimSpace(languagesFlag) != "" {
				cfg.Selection.Languages = language.NormalizeList(strings.Split(languagesFlag, ","))
			}
			if cmd.Flags().Changed("force-language") {
				cfg.Selection.ForcedLanguage = language.Normalize(forcedFlag)
			}
			if strings.TrimSpace(ffmpegFlag) != "" {
				cfg.Tools.FFmpeg = ffmpegFlag
			}
			if strings.TrimSpace(ffprobeFlag) != "" {
				cfg.Tools.FFprobe = ffprobeFlag
			}
			if strings.TrimSpace(ffmpegLogLevel) != "" {
				cfg.Tools.FFmpegLogLvl = ffmpegLogLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := cfg.Logging.Level
			switch {
			case verbosity >= 2:
				level = "debug"
			case verbosity == 1:
				level = "info"
			}
			logger, err := logging.New(logging.Options{
				Level:  level,
				Format: cfg.Logging.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			sources := make([]string, 0, len(args))
			for _, arg := range args {
				abs, err := filepath.Abs(arg)
				if err != nil {
					return fmt.Errorf("resolve source path %q: %w", arg, err)
				}
				sources = append(sources, abs)
			}

			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			lock, err := pipeline.AcquireLock(cfg.Paths.StagingDir)
			if err != nil {
				return err
			}
			defer func() {
				if releaseErr := lock.Release(); releaseErr != nil {
					logger.Warn("lock release failed", "error", releaseErr)
				}
			}()

			store, err := history.Open(cfg.Paths.HistoryDB)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			prober := ffprobe.New(cfg.Tools.FFprobe)
			encoder := ffmpeg.New(cfg.Tools.FFmpeg, cfg.Tools.FFmpegLogLvl)
			runner, err := pipeline.New(cfg, logger, prober, encoder, store, pipeline.WithDryRun(dryRun))
			if err != nil {
				return err
			}

			if dryRun {
				return printPlans(cmd, runner, sources)
			}
			return runner.ProcessAll(cmd.Context(), sources)
		},
	}

	cmd.Flags().StringVarP(&languagesFlag, "languages", "l", "", "Comma-separated list of languages to keep (overrides config)")
	cmd.Flags().StringVar(&forcedFlag, "force-language", "", "Language assumed for untagged tracks (overrides config)")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	cmd.Flags().StringVar(&ffmpegFlag, "ffmpeg", "", "Path to the ffmpeg binary (overrides config)")
	cmd.Flags().StringVar(&ffprobeFlag, "ffprobe", "", "Path to the ffprobe binary (overrides config)")
	cmd.Flags().StringVar(&ffmpegLogLevel, "ffmpeg-loglevel", "", "Log level passed to ffmpeg (overrides config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the conversion plan without encoding")

	return cmd
}

// printPlans renders the per-file conversion plan. Planning failures are
// reported per source; the remaining sources are still planned.
func printPlans(cmd *cobra.Command, runner *pipeline.Runner, sources []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, source := range sources {
		directive, err := runner.Plan(cmd.Context(), source)
		if errors.Is(err, plan.ErrNothingToConvert) {
			fmt.Fprintf(out, "%s: nothing to convert\n", source)
			continue
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", source, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s -> %s\n", source, directive.OutputName)
		fmt.Fprintln(out, renderPlanTable(directive))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to plan", failed, len(sources))
	}
	return nil
}

func renderPlanTable(directive plan.Directive) string {
	headers := []string{"#", "Kind", "Stream", "Format", "Codec", "Options", "Title"}
	rows := make([][]string, 0, len(directive.Mappings))
	for i, ref := range directive.Mappings {
		codec := directive.Codecs[i]
		meta := directive.Metadata[i]
		trk := directive.Tracks[i]
		rows = append(rows, []string{
			strconv.Itoa(i),
			string(codec.Kind),
			fmt.Sprintf("%d:%d", ref.Input, ref.Stream),
			trk.MediaFormat,
			codec.Codec,
			strings.Join(codec.Options, " "),
			meta.Title,
		})
	}
	return renderTable(headers, rows, []columnAlignment{alignRight})
}
