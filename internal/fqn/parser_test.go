// internal/fqn/parser_test.go
package fqn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  Name
	}{
		{
			name:     "library and feature",
			raw:      "LibV1:peak_time",
			expected: Name{Library: "LibV1", Feature: "peak_time"},
		},
		{
			name:     "with wildcard",
			raw:      "A:mid;stim1",
			expected: Name{Library: "A", Feature: "mid", Wildcard: "stim1"},
		},
		{
			name:     "blanks are trimmed",
			raw:      "  LibV5:AP_begin_indices ; step2 ",
			expected: Name{Library: "LibV5", Feature: "AP_begin_indices", Wildcard: "step2"},
		},
		{
			name:     "empty feature is accepted",
			raw:      "Lib:",
			expected: Name{Library: "Lib"},
		},
		{
			name:      "error - missing delimiter",
			raw:       "rootWithoutColon",
			expectErr: true,
		},
		{
			name:      "error - delimiter only inside wildcard",
			raw:       "root;A:b",
			expectErr: true,
		},
		{
			name:      "error - empty library",
			raw:       ":feature",
			expectErr: true,
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMissingVersionDelimiter))
				assert.Contains(t, err.Error(), tc.raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, n)
		})
	}
}

func TestName_String(t *testing.T) {
	assert.Equal(t, "A:mid", MustParse("A:mid").String())
	assert.Equal(t, "A:mid;stim1", MustParse("A:mid;stim1").String())
	assert.Equal(t, "A:mid", MustParse("A:mid;stim1").Base())
	assert.Equal(t, "A:mid;other", MustParse("A:mid;stim1").WithWildcard("other").String())
}

func TestSplitWildcard(t *testing.T) {
	base, wc := SplitWildcard("B:leaf;stim1")
	assert.Equal(t, "B:leaf", base)
	assert.Equal(t, "stim1", wc)

	base, wc = SplitWildcard("B:leaf")
	assert.Equal(t, "B:leaf", base)
	assert.Empty(t, wc)

	assert.Equal(t, "B:leaf", Qualify("B:leaf", ""))
	assert.Equal(t, "B:leaf;x", Qualify("B:leaf", "x"))
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nocolon") })
}
