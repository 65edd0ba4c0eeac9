package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/featuredag/internal/ctxlog"
	"github.com/specialistvlad/featuredag/internal/featurestore"
)

// Input is one unit of data to compute features for. Seed fills the fresh
// store with the raw data (e.g. trace vectors) before any plan runs.
type Input struct {
	ID   string
	Seed func(store *featurestore.Store) error
}

// Result is the outcome of processing one input.
type Result struct {
	Input string
	RunID string
	Store *featurestore.Store
	Err   error
}

// ProcessInputs evaluates features for every input, each with its own store.
// Results are returned in input order; a failing input does not cancel the
// others.
func (e *Engine) ProcessInputs(ctx context.Context, inputs []Input, features []string) []Result {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Processing inputs.", "inputs", len(inputs), "features", len(features), "workers", e.workers)

	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, in := range inputs {
		g.Go(func() error {
			results[i] = e.processInput(gctx, in, features)
			return nil
		})
	}
	g.Wait()

	return results
}

func (e *Engine) processInput(ctx context.Context, in Input, features []string) Result {
	runID := uuid.NewString()
	ctx = ctxlog.With(ctx, "run_id", runID, "input", in.ID)
	logger := ctxlog.FromContext(ctx)

	res := Result{Input: in.ID, RunID: runID, Store: e.NewStore()}

	if in.Seed != nil {
		if err := in.Seed(res.Store); err != nil {
			res.Err = fmt.Errorf("seeding input %s: %w", in.ID, err)
		}
	}
	if res.Err == nil {
		res.Err = e.EvaluateAll(ctx, res.Store, features...)
	}

	status := "ok"
	if res.Err != nil {
		status = "failed"
		logger.Error("Input processing failed.", "error", res.Err)
	} else {
		logger.Info("Input processed.")
	}
	if e.metrics != nil {
		e.metrics.InputsProcessed.WithLabelValues(status).Inc()
	}
	return res
}
