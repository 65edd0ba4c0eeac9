package featurestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_LoadCopies(t *testing.T) {
	t.Parallel()
	src := New()
	src.Ints.Set("A:idx", []int{1, 2})
	src.Doubles.Set("Trace:V;stim1", []float64{-70, 20})
	src.Strings.Set("Threshold", "-20")

	snap := src.Snapshot()
	snap.Ints["A:idx"][0] = 99

	dst := New()
	dst.Load(snap)

	assert.Equal(t, src.Snapshot().Doubles, dst.Snapshot().Doubles)
	assert.Equal(t, src.Snapshot().Strings, dst.Snapshot().Strings)

	v, _ := src.Ints.Get("A:idx")
	assert.Equal(t, []int{1, 2}, v, "snapshots do not alias the store")
	v, _ = dst.Ints.Get("A:idx")
	assert.Equal(t, []int{99, 2}, v)
}
