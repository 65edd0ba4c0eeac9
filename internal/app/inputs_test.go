package app

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/featuredag/internal/featurestore"
	tu "github.com/specialistvlad/featuredag/internal/testutil"
)

func TestDecodeInputs(t *testing.T) {
	t.Parallel()

	inputs, err := DecodeInputs(strings.NewReader(`
inputs:
  - id: a
    ints:
      "A:idx": [1, 2]
    strings:
      Threshold: "-10"
  - doubles:
      "Trace:V;stim1": [0.5]
`))
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "a", inputs[0].ID)
	assert.Equal(t, "input-2", inputs[1].ID)

	store := featurestore.New()
	require.NoError(t, inputs[0].Seed(store))
	v, err := store.Ints.Get("A:idx")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, v)
	s, err := store.Strings.Get("Threshold")
	require.NoError(t, err)
	assert.Equal(t, "-10", s)

	store = featurestore.New()
	require.NoError(t, inputs[1].Seed(store))
	assert.True(t, store.Doubles.Has("Trace:V;stim1"))
}

func TestDecodeInputs_Errors(t *testing.T) {
	t.Parallel()

	_, err := DecodeInputs(strings.NewReader("inputs:\n  - id: a\n  - id: a\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate input id")

	_, err = DecodeInputs(strings.NewReader("inputs:\n  - id: a\n    floats: {}\n"))
	require.Error(t, err)
}

func TestLoadInputs(t *testing.T) {
	t.Parallel()
	dir := tu.WriteFiles(t, map[string]string{
		"inputs.yaml": "inputs:\n  - id: only\n",
	})

	inputs, err := LoadInputs(filepath.Join(dir, "inputs.yaml"))
	require.NoError(t, err)
	require.Len(t, inputs, 1)

	_, err = LoadInputs(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
