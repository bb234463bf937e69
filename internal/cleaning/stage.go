package cleaning

import (
	"context"
	"log/slog"
	"math/rand"

	"megasuper/internal/catalog"
	"megasuper/pkg/contracts/domain"
)

// Stage is a single step of the cleaning pipeline. Stages run strictly in
// the order the pipeline declares them: each one relies on the
// postconditions of the stages before it.
type Stage interface {
	// ID returns the unique identifier for this stage.
	ID() string

	// Name returns the human-readable name for this stage.
	Name() string

	// Execute runs the stage against the shared pipeline state.
	Execute(ctx context.Context, state *State) error
}

// State is the mutable batch threaded through the stage sequence by
// exclusive ownership. Raw holds the loaded input; the field-validation
// stage populates Records, which every later stage reads and rewrites.
type State struct {
	Raw     []domain.RawRecord
	Records []domain.SaleRecord
	Stats   *domain.CleaningStats

	Canonicalizer *catalog.Canonicalizer
	Geocoder      GeocodeImputer
	Sentinel      string

	Logger   *slog.Logger
	Observer Observer
}

// GeocodeImputer is the postal-code imputation dependency.
type GeocodeImputer interface {
	Impute(records []domain.SaleRecord) int
}

// Observer receives discrete pipeline events: it is how the external
// report formatter and the logs see progress without the core printing
// anything itself.
type Observer interface {
	OnStageStart(stageID string, records int)
	OnStageComplete(stageID string, records int)
	OnAnomaly(stageID string, description string)
}

// SlogObserver renders pipeline events through structured logging.
type SlogObserver struct {
	Logger *slog.Logger
}

func (o *SlogObserver) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o *SlogObserver) OnStageStart(stageID string, records int) {
	o.logger().Info("stage started",
		slog.String("stage", stageID),
		slog.Int("records", records))
}

func (o *SlogObserver) OnStageComplete(stageID string, records int) {
	o.logger().Info("stage completed",
		slog.String("stage", stageID),
		slog.Int("records", records))
}

func (o *SlogObserver) OnAnomaly(stageID string, description string) {
	o.logger().Warn("anomaly found",
		slog.String("stage", stageID),
		slog.String("description", description))
}

// rngSource builds the injected random source for synthetic postal codes.
func rngSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
