package linker

import (
	"context"
	"errors"

	"github.com/specialistvlad/featuredag/internal/ctxlog"
	"github.com/specialistvlad/featuredag/internal/depspec"
	"github.com/specialistvlad/featuredag/internal/fqn"
	"github.com/specialistvlad/featuredag/internal/registry"
	"github.com/specialistvlad/featuredag/internal/resolver"
)

// Link resolves and links every declared feature of m against reg.
func Link(ctx context.Context, m *depspec.Map, reg *registry.Registry) (*Table, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Linking dependency map.", "features", m.Len(), "libraries", len(reg.Libraries()))

	res := resolver.New(m)
	table := newTable()
	var errs []error

	for _, declared := range m.Names() {
		entry, err := linkFeature(res, reg, declared)
		if err != nil {
			logger.Debug("Feature failed to link.", "feature", declared, "error", err)
			errs = append(errs, &FeatureError{Feature: declared, Err: err})
			continue
		}
		if !table.add(entry) {
			logger.Warn("Feature name already linked from another library, keeping the first.", "feature", entry.Feature, "declared", declared)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	logger.Debug("Linking complete.", "entries", table.Len())
	return table, nil
}

// linkFeature resolves one declared feature into its entry.
func linkFeature(res *resolver.Resolver, reg *registry.Registry, declared string) (*Entry, error) {
	plan, err := res.Resolve(declared)
	if err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(plan))
	for _, name := range plan {
		step, err := linkStep(reg, name)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	// The declared feature is always the last plan entry.
	return &Entry{
		Feature:  steps[len(steps)-1].Feature.Feature,
		Declared: declared,
		Steps:    steps,
	}, nil
}

// linkStep resolves a single plan entry to its callable.
func linkStep(reg *registry.Registry, name string) (Step, error) {
	n, err := fqn.Parse(name)
	if err != nil {
		return Step{}, err
	}

	lib, ok := reg.Library(n.Library)
	if !ok {
		return Step{}, &UnknownLibraryError{Name: name, Library: n.Library}
	}

	fn, ok := lib.Feature(n.Feature)
	if !ok {
		return Step{}, &UnknownFeatureError{Name: name, Library: n.Library, Feature: n.Feature}
	}

	return Step{Name: name, Feature: n, Func: fn}, nil
}
