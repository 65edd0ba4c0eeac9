// Package stats is a small feature library of descriptive statistics over a
// voltage trace. It exists as an example of a feature library and gives the
// command line tool something to link and run against.
//
// Raw data is provided by the input under the "Trace" library: "Trace:V" and
// "Trace:T" (optionally wildcard-qualified, e.g. "Trace:V;stim1"). The Trace
// callables only report missing data; a seeded input turns them into cache
// hits.
package stats

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"strconv"

	"github.com/specialistvlad/featuredag/internal/depspec"
	"github.com/specialistvlad/featuredag/internal/featurestore"
	"github.com/specialistvlad/featuredag/internal/fqn"
	"github.com/specialistvlad/featuredag/internal/registry"
)

const (
	// TraceLibrary owns the raw input vectors.
	TraceLibrary = "Trace"
	// Library owns the derived statistics.
	Library = "Stats"

	// ThresholdSetting names the metadata value used by the threshold features.
	ThresholdSetting = "Threshold"
	defaultThreshold = -20.0
)

//go:embed dependencies.txt
var dependencies string

// Dependencies returns the dependency map of this library.
func Dependencies() (*depspec.Map, error) {
	return depspec.ParseString(dependencies)
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Dependencies returns the bundled dependency map of the Stats library.
func (m *Module) Dependencies() (*depspec.Map, error) {
	return Dependencies()
}

// Register registers the Trace and Stats libraries.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterLibrary(TraceLibrary, map[string]registry.Func{
		"V": rawTrace,
		"T": rawTrace,
	})
	r.RegisterLibrary(Library, map[string]registry.Func{
		"count":                   count,
		"mean":                    mean,
		"stddev":                  stddev,
		"min":                     minimum,
		"max":                     maximum,
		"range":                   valueRange,
		"duration":                duration,
		"above_threshold_indices": aboveThresholdIndices,
		"above_threshold_count":   aboveThresholdCount,
	})
}

// dep returns the name of a dependency carrying the wildcard of call.
func dep(call *registry.Call, base string) string {
	return fqn.Qualify(base, call.Wildcard())
}

func rawTrace(_ context.Context, call *registry.Call) error {
	return fmt.Errorf("%w: raw trace data %s was not provided by the input", featurestore.ErrNotYetComputed, call.Name)
}

// trace reads the voltage vector and rejects empty traces.
func trace(call *registry.Call) ([]float64, error) {
	v, err := call.Store.Doubles.Get(dep(call, "Trace:V"))
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("%s: trace is empty", call.Name)
	}
	return v, nil
}

func count(_ context.Context, call *registry.Call) error {
	v, err := call.Store.Doubles.Get(dep(call, "Trace:V"))
	if err != nil {
		return err
	}
	call.Store.Ints.Set(call.Name, []int{len(v)})
	return nil
}

func mean(_ context.Context, call *registry.Call) error {
	v, err := trace(call)
	if err != nil {
		return err
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	call.Store.Doubles.Set(call.Name, []float64{sum / float64(len(v))})
	return nil
}

func stddev(_ context.Context, call *registry.Call) error {
	var mu, v []float64
	ok := call.Store.Accessor().Get(
		featurestore.Doubles(dep(call, "Stats:mean"), &mu),
		featurestore.Doubles(dep(call, "Trace:V"), &v),
	)
	if !ok {
		return fmt.Errorf("%w: %s needs Stats:mean and Trace:V", featurestore.ErrNotYetComputed, call.Name)
	}
	if len(v) == 0 || len(mu) != 1 {
		return fmt.Errorf("%s: trace is empty", call.Name)
	}
	sq := 0.0
	for _, x := range v {
		sq += (x - mu[0]) * (x - mu[0])
	}
	call.Store.Doubles.Set(call.Name, []float64{math.Sqrt(sq / float64(len(v)))})
	return nil
}

func minimum(_ context.Context, call *registry.Call) error {
	v, err := trace(call)
	if err != nil {
		return err
	}
	m := v[0]
	for _, x := range v[1:] {
		m = math.Min(m, x)
	}
	call.Store.Doubles.Set(call.Name, []float64{m})
	return nil
}

func maximum(_ context.Context, call *registry.Call) error {
	v, err := trace(call)
	if err != nil {
		return err
	}
	m := v[0]
	for _, x := range v[1:] {
		m = math.Max(m, x)
	}
	call.Store.Doubles.Set(call.Name, []float64{m})
	return nil
}

func valueRange(_ context.Context, call *registry.Call) error {
	var lo, hi []float64
	ok := call.Store.Accessor().Get(
		featurestore.Doubles(dep(call, "Stats:min"), &lo),
		featurestore.Doubles(dep(call, "Stats:max"), &hi),
	)
	if !ok {
		return fmt.Errorf("%w: %s needs Stats:min and Stats:max", featurestore.ErrNotYetComputed, call.Name)
	}
	call.Store.Doubles.Set(call.Name, []float64{hi[0] - lo[0]})
	return nil
}

func duration(_ context.Context, call *registry.Call) error {
	t, err := call.Store.Doubles.Get(dep(call, "Trace:T"))
	if err != nil {
		return err
	}
	if len(t) == 0 {
		return fmt.Errorf("%s: time vector is empty", call.Name)
	}
	call.Store.Doubles.Set(call.Name, []float64{t[len(t)-1] - t[0]})
	return nil
}

// threshold reads the Threshold setting, falling back to the default.
func threshold(store *featurestore.Store) (float64, error) {
	raw, err := store.Strings.Get(ThresholdSetting)
	if err != nil {
		return defaultThreshold, nil
	}
	th, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s setting %q: %w", ThresholdSetting, raw, err)
	}
	return th, nil
}

func aboveThresholdIndices(_ context.Context, call *registry.Call) error {
	v, err := call.Store.Doubles.Get(dep(call, "Trace:V"))
	if err != nil {
		return err
	}
	th, err := threshold(call.Store)
	if err != nil {
		return err
	}
	idx := []int{}
	for i, x := range v {
		if x > th {
			idx = append(idx, i)
		}
	}
	call.Store.Ints.Set(call.Name, idx)
	return nil
}

func aboveThresholdCount(_ context.Context, call *registry.Call) error {
	n, ok := call.Store.Ints.CheckCached(dep(call, "Stats:above_threshold_indices"))
	if !ok {
		return fmt.Errorf("%w: %s needs Stats:above_threshold_indices", featurestore.ErrNotYetComputed, call.Name)
	}
	call.Store.Ints.Set(call.Name, []int{n})
	return nil
}
