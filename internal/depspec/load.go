package depspec

import (
	"context"
	"os"
	"path/filepath"

	"github.com/specialistvlad/featuredag/internal/ctxlog"
	"github.com/specialistvlad/featuredag/internal/fsutil"
)

// Spec is everything read from a set of specification sources.
type Spec struct {
	// Deps maps each declared feature to its immediate dependencies.
	Deps *Map
	// Settings holds default string metadata seeded into every feature store.
	Settings map[string]string
}

// Load reads every given path and merges the results in order. Files with
// a `.hcl` extension are read as HCL, any other file as the line format.
// Directories are walked for `.hcl` and `.txt` files.
func Load(ctx context.Context, paths ...string) (*Spec, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Specification loader started.", "path_count", len(paths))

	s := &Spec{Deps: newMap(), Settings: make(map[string]string)}
	hl := newHCLLoader()

	files, err := findSpecFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered specification files.", "count", len(files))

	for _, file := range files {
		if filepath.Ext(file) == ".hcl" {
			if err := hl.loadFile(file, s); err != nil {
				return nil, err
			}
			continue
		}
		m, err := ParseFile(file)
		if err != nil {
			return nil, err
		}
		s.Deps.merge(m)
	}

	logger.Debug("Specification loading complete.", "features", s.Deps.Len(), "settings", len(s.Settings))
	return s, nil
}

// findSpecFiles expands paths into a flat, de-duplicated list of files.
// Unlike directories, explicitly named files are taken whatever their
// extension.
func findSpecFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		all = append(all, p)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &UnopenableSpecificationError{Path: path, Err: err}
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		files, err := fsutil.FindFilesByExtension(path, ".hcl", ".txt")
		if err != nil {
			return nil, &UnopenableSpecificationError{Path: path, Err: err}
		}
		for _, f := range files {
			add(f)
		}
	}
	return all, nil
}
