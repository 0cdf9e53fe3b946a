package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gyeh/ssmixtwins/internal/config"
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/source"
	"github.com/gyeh/ssmixtwins/internal/storage"
	"github.com/gyeh/ssmixtwins/internal/validate"
)

// PipelineError wraps an error with the phase of the run it occurred in.
//
// Grounded on the teacher's internal/ingest/pipeline.go::PipelineError.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Summary reports what one Run accomplished.
type Summary struct {
	PatientsProcessed int
	MessagesWritten   int
	PatientResults    []*PatientResult
	ValidationReport  *validate.Report
	DurationValidate  time.Duration
	DurationGenerate  time.Duration
	DurationTotal     time.Duration
}

// Run executes the full generation pipeline: validate → build roster →
// fan out one worker per patient file → summarize.
//
// Grounded on the teacher's internal/ingest/pipeline.go phase structure,
// and on src/main.py::create_ssmix for the roster-then-fan-out shape.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Summary, error) {
	totalStart := time.Now()
	summary := &Summary{}

	if !cfg.AlreadyValidated {
		log.Info().Str("source", cfg.SourceDir).Msg("starting validation sweep")
		validateStart := time.Now()
		report, err := validate.Sweep(cfg.SourceDir, cfg.EarlyExitThreshold)
		summary.DurationValidate = time.Since(validateStart)
		if err != nil {
			return nil, &PipelineError{Phase: "validate", Err: err}
		}
		summary.ValidationReport = report
		if !report.Valid() {
			if _, err := validate.WriteReport(report, cfg.OutputDir); err != nil {
				return nil, &PipelineError{Phase: "validate", Err: err}
			}
			return summary, &PipelineError{Phase: "validate", Err: fmt.Errorf("%d source file(s) failed validation", len(report.ByFile()))}
		}
	} else {
		log.Info().Msg("skipping validation sweep (already validated)")
	}

	log.Info().Int("physicians", cfg.PhysicianCount).Msg("building physician roster")
	hospital, roster, err := BuildRoster(cfg.Seed, cfg.PhysicianCount)
	if err != nil {
		return nil, &PipelineError{Phase: "roster", Err: err}
	}

	files, err := source.ListPatientFiles(cfg.SourceDir)
	if err != nil {
		return nil, &PipelineError{Phase: "generate", Err: err}
	}

	messageTypes := make(map[string]bool, len(cfg.MessageTypes))
	for _, mt := range cfg.MessageTypes {
		messageTypes[mt] = true
	}
	characterSet := hl7.CharacterSet(cfg.CharacterSet)
	writer := storage.NewWriter(cfg.OutputDir)

	log.Info().Int("patients", len(files)).Int("workers", cfg.MaxWorkers).Msg("starting generation")
	generateStart := time.Now()

	results := make([]*PatientResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.MaxWorkers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			result, err := ProcessPatientFile(gctx, path, i, cfg.Seed, hospital, roster, messageTypes, characterSet, writer)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			log.Debug().Str("file", result.SourceFile).Str("sha256", result.SourceHash).Int("messages", result.MessagesWritten).Msg("patient processed")
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &PipelineError{Phase: "generate", Err: err}
	}
	summary.DurationGenerate = time.Since(generateStart)

	summary.PatientResults = results
	for _, r := range results {
		if r == nil {
			continue
		}
		summary.PatientsProcessed++
		summary.MessagesWritten += r.MessagesWritten
	}
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Int("patients", summary.PatientsProcessed).
		Int("messages", summary.MessagesWritten).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("generation pipeline complete")

	return summary, nil
}
