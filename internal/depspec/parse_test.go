package depspec

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Declarations(t *testing.T) {
	t.Parallel()
	m, err := ParseString("A:root #A:mid\nA:mid #B:leaf")
	require.NoError(t, err)

	assert.Equal(t, []string{"A:root", "A:mid"}, m.Names())

	deps, ok := m.Dependencies("A:root")
	require.True(t, ok)
	assert.Equal(t, []string{"A:mid"}, deps)

	deps, ok = m.Dependencies("A:mid")
	require.True(t, ok)
	assert.Equal(t, []string{"B:leaf"}, deps)

	// B:leaf is only referenced, never declared.
	assert.False(t, m.Has("B:leaf"))
}

func TestParse_LineShapes(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    string
		expected map[string][]string
		order    []string
	}{
		{
			name:     "feature without dependencies",
			input:    "LibV1:time\n",
			expected: map[string][]string{"LibV1:time": {}},
			order:    []string{"LibV1:time"},
		},
		{
			name:     "blank and whitespace-only lines are skipped",
			input:    "\n   \n\tLibV1:a #LibV1:b\n\n",
			expected: map[string][]string{"LibV1:a": {"LibV1:b"}},
			order:    []string{"LibV1:a"},
		},
		{
			name:     "unmarked trailing tokens are ignored",
			input:    "LibV1:a extra #LibV1:b junk #LibV1:c",
			expected: map[string][]string{"LibV1:a": {"LibV1:b", "LibV1:c"}},
			order:    []string{"LibV1:a"},
		},
		{
			name:     "line without a declared name is skipped",
			input:    "#LibV1:b\nLibV1:a",
			expected: map[string][]string{"LibV1:a": {}},
			order:    []string{"LibV1:a"},
		},
		{
			name:     "wildcards are kept verbatim",
			input:    "LibV5:x #LibV5:y;stim1 #LibV5:z",
			expected: map[string][]string{"LibV5:x": {"LibV5:y;stim1", "LibV5:z"}},
			order:    []string{"LibV5:x"},
		},
		{
			name:     "malformed names are not rejected",
			input:    "rootWithoutColon #alsoBad",
			expected: map[string][]string{"rootWithoutColon": {"alsoBad"}},
			order:    []string{"rootWithoutColon"},
		},
		{
			name:     "repeated declarations append",
			input:    "A:x #A:y\nA:z\nA:x #A:w #A:y",
			expected: map[string][]string{"A:x": {"A:y", "A:w"}, "A:z": {}},
			order:    []string{"A:x", "A:z"},
		},
		{
			name:     "bare markers are dropped",
			input:    "A:x # #A:y",
			expected: map[string][]string{"A:x": {"A:y"}},
			order:    []string{"A:x"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := ParseString(tc.input)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.order, m.Names()); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
			got := make(map[string][]string)
			for _, name := range m.Names() {
				deps, _ := m.Dependencies(name)
				got[name] = deps
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("dependencies mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMap_IsReadOnly(t *testing.T) {
	t.Parallel()
	m := FromDeclarations(Declaration{Name: "A:a", DependsOn: []string{"A:b"}})

	names := m.Names()
	names[0] = "mutated"
	deps, _ := m.Dependencies("A:a")
	deps[0] = "mutated"

	assert.Equal(t, []string{"A:a"}, m.Names())
	deps, _ = m.Dependencies("A:a")
	assert.Equal(t, []string{"A:b"}, deps)
}

func TestParseFile_Unopenable(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := ParseFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnopenableSpecification))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var openErr *UnopenableSpecificationError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, path, openErr.Path)
}

func TestFormat_RoundTrip(t *testing.T) {
	t.Parallel()
	const src = "A:root #A:mid #C:other\nA:mid #B:leaf\nB:leaf\n"
	m, err := ParseString(src)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, m))
	assert.Equal(t, src, buf.String())
}

func TestMerge(t *testing.T) {
	t.Parallel()
	a, err := ParseString("A:x #A:y\nA:y\n")
	require.NoError(t, err)
	b, err := ParseString("A:x #A:z\nB:q #A:x\n")
	require.NoError(t, err)

	m := Merge(a, nil, b)

	assert.Equal(t, []string{"A:x", "A:y", "B:q"}, m.Names())
	deps, ok := m.Dependencies("A:x")
	require.True(t, ok)
	assert.Equal(t, []string{"A:y", "A:z"}, deps)
	assert.Equal(t, 2, a.Len(), "inputs are left untouched")
}
