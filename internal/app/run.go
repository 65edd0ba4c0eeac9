package app

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/featuredag/internal/depspec"
	"github.com/specialistvlad/featuredag/internal/engine"
	"github.com/specialistvlad/featuredag/internal/featurestore"
	"github.com/specialistvlad/featuredag/internal/linker"
	"github.com/specialistvlad/featuredag/internal/resolver"
)

// ErrInputsFailed is returned by Run when at least one input failed.
var ErrInputsFailed = errors.New("one or more inputs failed")

// Deps writes the loaded dependency map in the line format.
func (a *App) Deps() error {
	return depspec.Format(a.outW, a.spec.Deps)
}

// Plan writes the evaluation plan of each named feature, or of every
// declared feature when none are named.
func (a *App) Plan(features ...string) error {
	r := resolver.New(a.spec.Deps)
	if len(features) == 0 {
		return r.Describe(a.outW)
	}
	for _, f := range features {
		plan, err := r.Resolve(f)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "%s\n", f)
		for i, name := range plan {
			fmt.Fprintf(a.outW, "  %2d. %s\n", i+1, name)
		}
	}
	return nil
}

// Link links the loaded specification against the registry.
func (a *App) Link(ctx context.Context) (*linker.Table, error) {
	return linker.Link(a.context(ctx), a.spec.Deps, a.registry)
}

// WriteTable writes every linked feature with its steps.
func (a *App) WriteTable(table *linker.Table) {
	for _, f := range table.Features() {
		e, _ := table.Entry(f)
		fmt.Fprintf(a.outW, "%s (%s)\n", e.Feature, e.Declared)
		for i, s := range e.Steps {
			fmt.Fprintf(a.outW, "  %2d. %s\n", i+1, s.Name)
		}
	}
}

// runReport is the YAML document written by Run.
type runReport struct {
	Results []resultDoc `yaml:"results"`
}

type resultDoc struct {
	Input  string                `yaml:"input"`
	RunID  string                `yaml:"run_id"`
	Error  string                `yaml:"error,omitempty"`
	Values featurestore.Snapshot `yaml:"values"`
}

// Run links the specification, evaluates features for every input and
// writes a YAML report. All declared features are evaluated when none are
// named. When a metrics address is configured, the metrics endpoint is
// served for the duration of the run.
func (a *App) Run(ctx context.Context, inputs []engine.Input, features []string) error {
	ctx = a.context(ctx)
	a.logger.Info("Starting run.", "inputs", len(inputs), "workers", a.config.Workers)

	table, err := a.Link(ctx)
	if err != nil {
		return fmt.Errorf("linking: %w", err)
	}
	if len(features) == 0 {
		features = table.Features()
	}

	if a.config.MetricsAddr != "" {
		srvCtx, stop := context.WithCancel(ctx)
		defer stop()
		go func() {
			if err := a.metrics.Serve(srvCtx, a.config.MetricsAddr); err != nil {
				a.logger.Error("Metrics server failed.", "error", err)
			}
		}()
	}

	eng := engine.New(table,
		engine.WithMetrics(a.metrics),
		engine.WithSettings(a.spec.Settings),
		engine.WithWorkers(a.config.Workers),
	)
	results := eng.ProcessInputs(ctx, inputs, features)

	report := runReport{Results: make([]resultDoc, 0, len(results))}
	failed := 0
	for _, res := range results {
		doc := resultDoc{Input: res.Input, RunID: res.RunID}
		if res.Store != nil {
			doc.Values = res.Store.Snapshot()
		}
		if res.Err != nil {
			failed++
			doc.Error = res.Err.Error()
		}
		report.Results = append(report.Results, doc)
	}

	enc := yaml.NewEncoder(a.outW)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	a.logger.Info("Run complete.", "inputs", len(results), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInputsFailed, failed, len(results))
	}
	return nil
}
