package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"m4vify/internal/config"
	"m4vify/internal/fileutil"
	"m4vify/internal/history"
	"m4vify/internal/inventory"
	"m4vify/internal/plan"
)

// Prober produces the textual stream inventory for a source file.
type Prober interface {
	Report(ctx context.Context, path string) (string, error)
}

// Encoder realizes a plan directive into an output container.
type Encoder interface {
	Encode(ctx context.Context, directive plan.Directive, outputPath string, onLine func(string)) error
}

// Recorder persists run outcomes. The history store satisfies it.
type Recorder interface {
	Record(ctx context.Context, entry history.Entry) (int64, error)
}

// Runner processes source files one at a time: probe, parse, plan, encode.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	prober  Prober
	encoder Encoder
	store   Recorder
	dryRun  bool
}

// Option configures the runner.
type Option func(*Runner)

// WithDryRun stops each run after planning; no encode is invoked and no
// history is recorded.
func WithDryRun(dryRun bool) Option {
	return func(r *Runner) { r.dryRun = dryRun }
}

// New constructs a runner. The recorder may be nil, in which case outcomes
// are only logged.
func New(cfg *config.Config, logger *slog.Logger, prober Prober, encoder Encoder, store Recorder, opts ...Option) (*Runner, error) {
	if cfg == nil || logger == nil || prober == nil || encoder == nil {
		return nil, errors.New("pipeline requires config, logger, prober, and encoder")
	}
	runner := &Runner{cfg: cfg, logger: logger, prober: prober, encoder: encoder, store: store}
	for _, opt := range opts {
		opt(runner)
	}
	return runner, nil
}

// ProcessAll handles each source independently: one file's failure is logged
// and does not prevent attempting the rest. The returned error summarizes
// how many files failed, if any.
func (r *Runner) ProcessAll(ctx context.Context, sources []string) error {
	failed := 0
	for _, source := range sources {
		if err := r.Process(ctx, source); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			r.logger.Error("conversion failed", slog.String("source", source), slog.Any("error", err))
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(sources))
	}
	return nil
}

// Plan runs probe, parse, and planning for one source without encoding.
func (r *Runner) Plan(ctx context.Context, source string) (plan.Directive, error) {
	report, err := r.prober.Report(ctx, source)
	if err != nil {
		return plan.Directive{}, err
	}

	tracks, err := inventory.Parse(report, r.cfg.Selection.Languages, r.cfg.Selection.ForcedLanguage)
	if err != nil {
		return plan.Directive{}, err
	}
	r.logger.Debug("inventory parsed",
		slog.String("source", source),
		slog.Int("video", len(tracks.Video)),
		slog.Int("audio", len(tracks.Audio)),
		slog.Int("subtitles", len(tracks.Subtitles)))

	return plan.Build(tracks.Video, tracks.Audio, tracks.Subtitles, r.cfg.LanguageRanking(), source)
}

// Process runs the full pipeline for one source file. A plan with nothing to
// convert ends the run without error; probe, parse, and encode failures are
// returned to the caller after being recorded.
func (r *Runner) Process(ctx context.Context, source string) error {
	runID := uuid.NewString()
	log := r.logger.With(slog.String("run_id", runID), slog.String("source", source))

	directive, err := r.Plan(ctx, source)
	if errors.Is(err, plan.ErrNothingToConvert) {
		log.Error("nothing to convert")
		r.record(ctx, log, history.Entry{
			RunID:   runID,
			Source:  source,
			Status:  history.StatusSkipped,
			Message: "nothing to convert",
		})
		return nil
	}
	if err != nil {
		r.record(ctx, log, history.Entry{RunID: runID, Source: source, Status: history.StatusFailed, Message: err.Error()})
		return err
	}

	log.Info("plan assembled",
		slog.Int("inputs", len(directive.Inputs)),
		slog.Int("tracks", len(directive.Mappings)),
		slog.String("output", directive.OutputName))

	if r.dryRun {
		return nil
	}

	destination := filepath.Join(filepath.Dir(source), directive.OutputName)
	err = r.encode(ctx, log, directive, destination)
	if err != nil {
		r.record(ctx, log, history.Entry{RunID: runID, Source: source, Status: history.StatusFailed, Message: err.Error()})
		return err
	}

	log.Info("conversion complete", slog.String("output", destination))
	r.record(ctx, log, history.Entry{
		RunID:  runID,
		Source: source,
		Output: destination,
		Status: history.StatusCompleted,
	})
	return nil
}

// encode realizes the directive inside a scoped staging directory and moves
// the finished container to destination. The staging directory is removed on
// every exit path.
func (r *Runner) encode(ctx context.Context, log *slog.Logger, directive plan.Directive, destination string) error {
	if err := r.cfg.EnsureDirectories(); err != nil {
		return err
	}
	stagingDir, err := os.MkdirTemp(r.cfg.Paths.StagingDir, "run-")
	if err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	defer func() {
		if removeErr := os.RemoveAll(stagingDir); removeErr != nil {
			log.Warn("staging cleanup failed", slog.Any("error", removeErr))
		}
	}()

	staged := filepath.Join(stagingDir, directive.OutputName)
	if err := r.encoder.Encode(ctx, directive, staged, func(line string) {
		log.Debug("encoder output", slog.String("line", line))
	}); err != nil {
		return err
	}

	if err := fileutil.MoveFile(staged, destination); err != nil {
		return fmt.Errorf("finalize output: %w", err)
	}
	return nil
}

func (r *Runner) record(ctx context.Context, log *slog.Logger, entry history.Entry) {
	if r.store == nil {
		return
	}
	if _, err := r.store.Record(ctx, entry); err != nil {
		log.Warn("history record failed", slog.Any("error", err))
	}
}
