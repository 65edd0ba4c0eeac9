package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/featuredag/internal/depspec"
	"github.com/specialistvlad/featuredag/internal/linker"
	"github.com/specialistvlad/featuredag/internal/registry"
	"github.com/specialistvlad/featuredag/internal/resolver"
	tu "github.com/specialistvlad/featuredag/internal/testutil"
)

func newTestApp(t *testing.T, cfg Config, modules ...registry.Module) (*App, *bytes.Buffer, *tu.SafeBuffer) {
	t.Helper()
	c, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &tu.SafeBuffer{}
	a, err := NewApp(context.Background(), out, logs, c, modules...)
	require.NoError(t, err)
	return a, out, logs
}

func TestNewApp_BundledSpecification(t *testing.T) {
	t.Parallel()
	a, out, _ := newTestApp(t, DefaultConfig())

	require.NoError(t, a.Deps())
	assert.Contains(t, out.String(), "Stats:range #Stats:min #Stats:max\n")
	assert.Contains(t, a.Registry().Libraries(), "Stats")
}

func TestNewApp_MissingSpecPath(t *testing.T) {
	t.Parallel()
	cfg, err := NewConfig(DefaultConfig())
	require.NoError(t, err)
	cfg.SpecPaths = []string{filepath.Join(t.TempDir(), "missing.txt")}

	_, err = NewApp(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, depspec.ErrUnopenableSpecification))
}

func TestApp_Plan(t *testing.T) {
	t.Parallel()
	a, out, _ := newTestApp(t, DefaultConfig())

	require.NoError(t, a.Plan("Stats:range"))

	want := "Stats:range\n" +
		"   1. Trace:V\n" +
		"   2. Stats:min\n" +
		"   3. Stats:max\n" +
		"   4. Stats:range\n"
	assert.Equal(t, want, out.String())
}

func TestApp_PlanCycle(t *testing.T) {
	t.Parallel()
	dir := tu.WriteFiles(t, map[string]string{
		"deps.txt": "A:x #A:y\nA:y #A:x\n",
	})
	cfg := DefaultConfig()
	cfg.SpecPaths = []string{dir}
	a, _, _ := newTestApp(t, cfg, tu.NewRecordingModule("A:x", "A:y"))

	err := a.Plan()
	require.Error(t, err)
	assert.True(t, errors.Is(err, resolver.ErrCycle))
}

func TestApp_LinkReportsMissingFeatures(t *testing.T) {
	t.Parallel()
	dir := tu.WriteFiles(t, map[string]string{
		"deps.txt": "A:x #A:y\nA:y\nB:z\n",
	})
	cfg := DefaultConfig()
	cfg.SpecPaths = []string{dir}
	a, _, _ := newTestApp(t, cfg, tu.NewRecordingModule("A:x"))

	table, err := a.Link(context.Background())
	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, linker.ErrUnknownFeature))
	assert.True(t, errors.Is(err, linker.ErrUnknownLibrary))
}

func TestApp_WriteTable(t *testing.T) {
	t.Parallel()
	dir := tu.WriteFiles(t, map[string]string{
		"deps.txt": "A:x #A:y;w\nA:y\n",
	})
	cfg := DefaultConfig()
	cfg.SpecPaths = []string{dir}
	a, out, _ := newTestApp(t, cfg, tu.NewRecordingModule("A:x", "A:y"))

	table, err := a.Link(context.Background())
	require.NoError(t, err)
	a.WriteTable(table)

	want := "x (A:x)\n" +
		"   1. A:y;w\n" +
		"   2. A:x\n" +
		"y (A:y)\n" +
		"   1. A:y\n"
	assert.Equal(t, want, out.String())
}

func TestApp_Run(t *testing.T) {
	t.Parallel()
	a, out, logs := newTestApp(t, DefaultConfig())

	inputs, err := DecodeInputs(strings.NewReader(`
inputs:
  - id: sweep1
    doubles:
      "Trace:V": [1, 2, 3, 4]
  - id: sweep2
    doubles:
      "Trace:V": [-30, 10]
`))
	require.NoError(t, err)

	err = a.Run(context.Background(), inputs, []string{"mean", "Stats:range"})
	require.NoError(t, err)

	var report runReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Results, 2)

	assert.Equal(t, "sweep1", report.Results[0].Input)
	assert.NotEmpty(t, report.Results[0].RunID)
	assert.Empty(t, report.Results[0].Error)
	assert.Equal(t, []float64{2.5}, report.Results[0].Values.Doubles["Stats:mean"])
	assert.Equal(t, []float64{3}, report.Results[0].Values.Doubles["Stats:range"])
	assert.Equal(t, []float64{-10}, report.Results[1].Values.Doubles["Stats:mean"])

	assert.Equal(t, 2.0, testutil.ToFloat64(a.Metrics().InputsProcessed.WithLabelValues("ok")))
	assert.Contains(t, logs.String(), "Run complete.")
}

func TestApp_RunReportsFailedInputs(t *testing.T) {
	t.Parallel()
	a, out, _ := newTestApp(t, DefaultConfig())

	inputs, err := DecodeInputs(strings.NewReader(`
inputs:
  - id: seeded
    doubles:
      "Trace:V": [1, 2]
  - id: empty
`))
	require.NoError(t, err)

	err = a.Run(context.Background(), inputs, []string{"count"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputsFailed))

	var report runReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Results, 2)
	assert.Empty(t, report.Results[0].Error)
	assert.Equal(t, []int{2}, report.Results[0].Values.Ints["Stats:count"])
	assert.Contains(t, report.Results[1].Error, "Trace:V")
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Metrics().InputsProcessed.WithLabelValues("failed")))
}
