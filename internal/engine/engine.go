package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/specialistvlad/featuredag/internal/ctxlog"
	"github.com/specialistvlad/featuredag/internal/featurestore"
	"github.com/specialistvlad/featuredag/internal/fqn"
	"github.com/specialistvlad/featuredag/internal/linker"
	"github.com/specialistvlad/featuredag/internal/metrics"
	"github.com/specialistvlad/featuredag/internal/registry"
)

const defaultWorkers = 4

// Engine executes linked plans against per-input feature stores.
type Engine struct {
	table    *linker.Table
	metrics  *metrics.Metrics
	settings map[string]string
	workers  int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics records step and input counters on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithSettings seeds every store created by the engine with settings.
func WithSettings(settings map[string]string) Option {
	return func(e *Engine) {
		e.settings = make(map[string]string, len(settings))
		for k, v := range settings {
			e.settings[k] = v
		}
	}
}

// WithWorkers bounds how many inputs ProcessInputs evaluates at once.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New creates an engine over a linked table.
func New(table *linker.Table, opts ...Option) *Engine {
	e := &Engine{table: table, workers: defaultWorkers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewStore returns a fresh feature store seeded with the engine's settings.
func (e *Engine) NewStore() *featurestore.Store {
	return featurestore.NewWithSettings(e.settings)
}

// Steps returns the plan of feature. Both the local name ("peak_time") and
// the declared name ("LibV1:peak_time") are accepted. A wildcard on the
// request ("peak_time;stim1") qualifies every step that has none of its
// own, the same way the resolver carries wildcards down a chain.
func (e *Engine) Steps(feature string) ([]linker.Step, error) {
	_, steps, err := e.plan(feature)
	return steps, err
}

// plan returns the table key serving feature and its steps. A declared
// name only matches an entry declared by the same library.
func (e *Engine) plan(feature string) (string, []linker.Step, error) {
	base, wildcard := fqn.SplitWildcard(feature)

	key := base
	entry, ok := e.table.Entry(base)
	if !ok && strings.Contains(base, fqn.LibraryDelimiter) {
		if n, err := fqn.Parse(base); err == nil {
			key = n.Feature
			entry, ok = e.table.Entry(key)
			if ok {
				declared, _ := fqn.SplitWildcard(entry.Declared)
				ok = declared == base
			}
		}
	}
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrNoPlan, feature)
	}

	steps, _ := e.table.Steps(key)
	if wildcard == "" {
		return key, steps, nil
	}

	out := steps[:0]
	seen := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		if !step.Feature.HasWildcard() {
			step.Feature = step.Feature.WithWildcard(wildcard)
			step.Name = step.Feature.String()
		}
		if _, dup := seen[step.Name]; dup {
			continue
		}
		seen[step.Name] = struct{}{}
		out = append(out, step)
	}
	return key, out, nil
}

// Evaluate runs the plan of feature against store, skipping every step whose
// value is already stored.
func (e *Engine) Evaluate(ctx context.Context, store *featurestore.Store, feature string) error {
	logger := ctxlog.FromContext(ctx)

	key, steps, err := e.plan(feature)
	if err != nil {
		return err
	}

	started := time.Now()
	if e.metrics != nil {
		defer e.metrics.ObserveEvaluation(key, started)
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return &StepError{Feature: feature, Step: step.Name, Err: err}
		}

		library := step.Feature.Library
		if store.Contains(step.Name) {
			logger.Debug("Step value already stored, skipping.", "feature", feature, "step", step.Name)
			if e.metrics != nil {
				e.metrics.CacheHits.WithLabelValues(library).Inc()
			}
			continue
		}

		logger.Debug("Executing step.", "feature", feature, "step", step.Name)
		if e.metrics != nil {
			e.metrics.StepsExecuted.WithLabelValues(library).Inc()
		}

		err := step.Func(ctx, &registry.Call{Name: step.Name, Feature: step.Feature, Store: store})
		if err == nil && !store.Contains(step.Name) {
			err = fmt.Errorf("%w: callable stored nothing under %s", featurestore.ErrNotYetComputed, step.Name)
		}
		if err != nil {
			if e.metrics != nil {
				e.metrics.StepFailures.WithLabelValues(library).Inc()
			}
			return &StepError{Feature: feature, Step: step.Name, Err: err}
		}
	}

	logger.Debug("Feature evaluated.", "feature", feature, "steps", len(steps), "duration", time.Since(started))
	return nil
}

// EvaluateAll evaluates every feature against the same store. A failing
// feature does not stop the others; all failures are returned joined.
func (e *Engine) EvaluateAll(ctx context.Context, store *featurestore.Store, features ...string) error {
	var errs []error
	for _, feature := range features {
		if err := e.Evaluate(ctx, store, feature); err != nil {
			ctxlog.FromContext(ctx).Warn("Feature evaluation failed.", "feature", feature, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
