package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/specialistvlad/featuredag/internal/featurestore"
	"github.com/specialistvlad/featuredag/internal/metrics"
	tu "github.com/specialistvlad/featuredag/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessInputs_IsolatedStores(t *testing.T) {
	t.Parallel()
	const n = 50
	m := metrics.New()
	mod := tu.NewRecordingModule("A:root", "A:mid", "B:leaf")
	e := newEngine(t, chainSpec, mod, WithWorkers(8), WithMetrics(m))

	inputs := make([]Input, n)
	for i := range inputs {
		inputs[i] = Input{
			ID: fmt.Sprintf("trace-%d", i),
			Seed: func(s *featurestore.Store) error {
				s.Doubles.Set("V", []float64{float64(i)})
				return nil
			},
		}
	}

	results := e.ProcessInputs(context.Background(), inputs, []string{"root", "mid"})
	require.Len(t, results, n)

	runIDs := make(map[string]struct{})
	for i, res := range results {
		require.NoError(t, res.Err)
		assert.Equal(t, fmt.Sprintf("trace-%d", i), res.Input)
		_, err := uuid.Parse(res.RunID)
		assert.NoError(t, err)
		runIDs[res.RunID] = struct{}{}

		v, err := res.Store.Doubles.Get("V")
		require.NoError(t, err)
		assert.Equal(t, []float64{float64(i)}, v)
		assert.True(t, res.Store.Contains("A:root"))
	}
	assert.Len(t, runIDs, n)

	// Every input computes each of the three features exactly once.
	assert.Len(t, mod.Calls(), 3*n)
	assert.Equal(t, float64(n), testutil.ToFloat64(m.InputsProcessed.WithLabelValues("ok")))
}

func TestProcessInputs_FailuresStayPerInput(t *testing.T) {
	t.Parallel()
	m := metrics.New()
	mod := tu.NewRecordingModule("A:root", "A:mid", "B:leaf")
	e := newEngine(t, chainSpec, mod, WithMetrics(m))

	seedErr := errors.New("unreadable trace")
	results := e.ProcessInputs(context.Background(), []Input{
		{ID: "good"},
		{ID: "bad", Seed: func(*featurestore.Store) error { return seedErr }},
		{ID: "unknown"},
	}, []string{"root"})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.True(t, errors.Is(results[1].Err, seedErr))
	assert.NoError(t, results[2].Err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.InputsProcessed.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InputsProcessed.WithLabelValues("failed")))
}
