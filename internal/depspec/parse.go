package depspec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DependencyMarker prefixes every dependency token in the line format.
const DependencyMarker = "#"

// maxLineSize bounds a single declaration line.
const maxLineSize = 1024 * 1024

// Parse reads a line-format specification. Blank lines and lines without a
// declared name are skipped. Unmarked tokens after the declared name are
// ignored.
func Parse(r io.Reader) (*Map, error) {
	m := newMap()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		name, deps, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		m.declare(name, deps...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dependency specification: %w", err)
	}
	return m, nil
}

// parseLine splits one declaration into its declared name and dependencies.
func parseLine(line string) (string, []string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], DependencyMarker) {
		return "", nil, false
	}

	var deps []string
	for _, field := range fields[1:] {
		if !strings.HasPrefix(field, DependencyMarker) {
			continue
		}
		if dep := strings.TrimPrefix(field, DependencyMarker); dep != "" {
			deps = append(deps, dep)
		}
	}
	return fields[0], deps, true
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Map, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens and parses a line-format specification file.
func ParseFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &UnopenableSpecificationError{Path: path, Err: err}
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Format writes m back in the line format, one declaration per line.
func Format(w io.Writer, m *Map) error {
	bw := bufio.NewWriter(w)
	for _, name := range m.order {
		bw.WriteString(name)
		for _, dep := range m.deps[name] {
			bw.WriteString(" " + DependencyMarker + dep)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
