package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/de-tools/campaign-dash/pkg/services/filter"
	"github.com/rs/zerolog"
)

// NoResultsNotice replaces every chart when the filters match nothing.
const NoResultsNotice = "No results for the current filters."

// Pass outcomes reported to the Recorder.
const (
	OutcomeRendered = "rendered"
	OutcomeEmpty    = "empty"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

// Recorder observes recomputation passes.
type Recorder interface {
	ObservePass(outcome string, records int, duration time.Duration)
}

// ViewOptions holds transient presentation state that never reaches the filter engine.
type ViewOptions struct {
	ShowLegend bool
}

func DefaultViewOptions() ViewOptions {
	return ViewOptions{ShowLegend: true}
}

type Service interface {
	Bounds() domain.Bounds
	DefaultCriteria() domain.FilterCriteria
	Build(ctx context.Context, criteria domain.FilterCriteria, opts ViewOptions) (*domain.Dashboard, error)
	Chart(ctx context.Context, id string, criteria domain.FilterCriteria, opts ViewOptions) (domain.ChartSpec, error)
}

type service struct {
	records  []domain.Record
	bounds   domain.Bounds
	variant  Variant
	features Features
	recorder Recorder
}

// NewService binds the read-only dataset to a dashboard variant.
// The records slice must not be modified afterwards.
func NewService(records []domain.Record, variant Variant, recorder Recorder) (Service, error) {
	bounds, err := filter.Bounds(records)
	if err != nil {
		return nil, err
	}
	return &service{
		records:  records,
		bounds:   bounds,
		variant:  variant,
		features: variant.Features(),
		recorder: recorder,
	}, nil
}

func (s *service) Bounds() domain.Bounds {
	return s.bounds
}

func (s *service) DefaultCriteria() domain.FilterCriteria {
	return filter.DefaultCriteria(s.bounds)
}

// Build runs one full pass: filter, aggregate, then chart construction.
// Nothing is carried over between passes.
func (s *service) Build(
	ctx context.Context,
	criteria domain.FilterCriteria,
	opts ViewOptions,
) (*domain.Dashboard, error) {
	start := time.Now()
	logger := zerolog.Ctx(ctx)

	view, err := filter.Apply(s.records, criteria)
	if err != nil {
		s.observe(OutcomeInvalid, 0, start)
		return nil, err
	}

	dash := &domain.Dashboard{
		RecordCount: len(view),
		Criteria:    criteria,
	}

	if len(view) == 0 && s.features.EmptyGuard {
		dash.Notice = NoResultsNotice
		s.observe(OutcomeEmpty, 0, start)
		logger.Debug().Msg("filters matched no records")
		return dash, nil
	}

	b := chartBuilder{view: view, features: s.features, showLegend: opts.ShowLegend}
	for _, id := range domain.ChartIDs {
		spec, err := b.build(id)
		if err != nil {
			s.observe(outcomeFor(err), len(view), start)
			return nil, fmt.Errorf("failed to build chart %s: %w", id, err)
		}
		dash.Charts = append(dash.Charts, spec)
	}

	s.observe(OutcomeRendered, len(view), start)
	logger.Debug().
		Int("records", len(view)).
		Str("variant", string(s.variant)).
		Msg("dashboard pass completed")
	return dash, nil
}

// Chart runs a pass for a single panel.
func (s *service) Chart(
	ctx context.Context,
	id string,
	criteria domain.FilterCriteria,
	opts ViewOptions,
) (domain.ChartSpec, error) {
	if !knownChart(id) {
		return domain.ChartSpec{}, fmt.Errorf("%w: %q", domain.ErrUnknownChart, id)
	}

	view, err := filter.Apply(s.records, criteria)
	if err != nil {
		return domain.ChartSpec{}, err
	}
	if len(view) == 0 {
		return domain.ChartSpec{}, fmt.Errorf("chart %s: %w", id, domain.ErrEmptyInput)
	}

	b := chartBuilder{view: view, features: s.features, showLegend: opts.ShowLegend}
	spec, err := b.build(id)
	if err != nil {
		return domain.ChartSpec{}, fmt.Errorf("failed to build chart %s: %w", id, err)
	}

	zerolog.Ctx(ctx).Debug().Str("chart", id).Int("records", len(view)).Msg("chart built")
	return spec, nil
}

func (s *service) observe(outcome string, records int, start time.Time) {
	if s.recorder == nil {
		return
	}
	s.recorder.ObservePass(outcome, records, time.Since(start))
}

func outcomeFor(err error) string {
	if errors.Is(err, domain.ErrEmptyInput) {
		return OutcomeEmpty
	}
	return OutcomeFailed
}

func knownChart(id string) bool {
	for _, known := range domain.ChartIDs {
		if known == id {
			return true
		}
	}
	return false
}
