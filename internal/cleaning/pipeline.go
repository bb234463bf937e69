package cleaning

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"megasuper/internal/catalog"
	"megasuper/internal/geocode"
	"megasuper/pkg/contracts/domain"
)

// Options configures a cleaning pipeline run.
type Options struct {
	// Sentinel fills missing seller and brand fields.
	Sentinel string

	// Seed drives the synthetic postal-code suffix generator so runs are
	// reproducible.
	Seed int64

	Logger   *slog.Logger
	Observer Observer
}

// Pipeline sequences the cleaning stages over one record batch. The stage
// order is fixed: later stages assume earlier postconditions (duplicate
// identity needs canonical product names, reconciliation needs validated
// numerics).
type Pipeline struct {
	stages        []Stage
	canonicalizer *catalog.Canonicalizer
	opts          Options
}

// NewPipeline creates the standard cleaning pipeline.
func NewPipeline(opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Observer == nil {
		opts.Observer = &SlogObserver{Logger: opts.Logger}
	}
	if opts.Sentinel == "" {
		opts.Sentinel = "não especificado"
	}

	return &Pipeline{
		stages: []Stage{
			&validateFieldsStage{},
			&canonicalizeStage{},
			&geocodeStage{},
			&dedupeStage{},
			&imputeStage{},
			&reconcileTotalsStage{},
			&finalizePostalStage{},
			&auditStage{},
		},
		canonicalizer: catalog.NewDefaultCanonicalizer(),
		opts:          opts,
	}
}

// Run executes every stage in order over the raw batch and returns the
// cleaned batch with its pipeline metadata.
func (p *Pipeline) Run(ctx context.Context, raw []domain.RawRecord) ([]domain.SaleRecord, *domain.CleaningStats, error) {
	runID := uuid.NewString()
	logger := p.opts.Logger.With(slog.String("run_id", runID))

	state := &State{
		Raw: raw,
		Stats: &domain.CleaningStats{
			RunID:        runID,
			InputRecords: len(raw),
		},
		Canonicalizer: p.canonicalizer,
		Geocoder:      geocode.NewImputer(rngSource(p.opts.Seed)),
		Sentinel:      p.opts.Sentinel,
		Logger:        logger,
		Observer:      p.opts.Observer,
	}

	logger.Info("cleaning pipeline started", slog.Int("records", len(raw)))

	for _, stage := range p.stages {
		state.Observer.OnStageStart(stage.ID(), len(state.Records))
		if err := stage.Execute(ctx, state); err != nil {
			return nil, nil, fmt.Errorf("stage %s failed: %w", stage.ID(), err)
		}
		state.Observer.OnStageComplete(stage.ID(), len(state.Records))
	}

	state.Stats.OutputRecords = len(state.Records)
	logger.Info("cleaning pipeline finished",
		slog.Int("records", state.Stats.OutputRecords),
		slog.Int("duplicates_removed", state.Stats.DuplicatesRemoved))

	return state.Records, state.Stats, nil
}

// Canonicalizer exposes the pipeline's canonicalizer, mainly for the
// standalone audit and tests.
func (p *Pipeline) Canonicalizer() *catalog.Canonicalizer {
	return p.canonicalizer
}
