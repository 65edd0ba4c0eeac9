package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/featuredag/internal/featurestore"
	"github.com/specialistvlad/featuredag/internal/fqn"
)

// Call is the context handed to a feature callable.
type Call struct {
	// Name is the wildcard-qualified name the result must be stored under.
	Name string
	// Feature is the parsed form of Name.
	Feature fqn.Name
	// Store is the feature store of the input being processed.
	Store *featurestore.Store
}

// Wildcard returns the wildcard qualifier of the call, if any.
func (c *Call) Wildcard() string {
	return c.Feature.Wildcard
}

// Func computes one feature and stores its value in call.Store.
type Func func(ctx context.Context, call *Call) error

// Module is the interface that all feature libraries must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Library is the feature table of one library identifier.
type Library struct {
	id       string
	features map[string]Func
}

// ID returns the library identifier.
func (l *Library) ID() string {
	return l.id
}

// Feature looks up a callable by local feature name.
func (l *Library) Feature(name string) (Func, bool) {
	fn, ok := l.features[name]
	return fn, ok
}

// Features returns the local feature names, sorted.
func (l *Library) Features() []string {
	names := make([]string, 0, len(l.features))
	for name := range l.features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registry holds every registered feature library for a single application
// instance.
type Registry struct {
	libraries map[string]*Library
	sealed    bool
}

// New creates and initializes a new, unsealed Registry instance.
func New() *Registry {
	return &Registry{libraries: make(map[string]*Library)}
}

// Build creates a registry, lets every module register itself and seals it.
func Build(modules ...Module) *Registry {
	r := New()
	for _, mod := range modules {
		mod.Register(r)
	}
	r.Seal()
	return r
}

// Register adds a callable for library:feature. Registering the same pair
// twice or registering into a sealed registry is a programmer error and
// panics.
func (r *Registry) Register(library, feature string, fn Func) {
	if r.sealed {
		panic(fmt.Sprintf("registry is sealed, cannot register '%s:%s'", library, feature))
	}
	if fn == nil {
		panic(fmt.Sprintf("feature '%s:%s' registered with a nil function", library, feature))
	}

	lib, ok := r.libraries[library]
	if !ok {
		lib = &Library{id: library, features: make(map[string]Func)}
		r.libraries[library] = lib
	}
	if _, exists := lib.features[feature]; exists {
		panic(fmt.Sprintf("feature '%s:%s' already registered", library, feature))
	}
	slog.Debug("Registering feature.", "library", library, "feature", feature)
	lib.features[feature] = fn
}

// RegisterLibrary registers every entry of features under library.
func (r *Registry) RegisterLibrary(library string, features map[string]Func) {
	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.Register(library, name, features[name])
	}
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether the registry has been sealed.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Library looks up a library by identifier.
func (r *Registry) Library(id string) (*Library, bool) {
	lib, ok := r.libraries[id]
	return lib, ok
}

// Libraries returns the registered library identifiers, sorted.
func (r *Registry) Libraries() []string {
	ids := make([]string, 0, len(r.libraries))
	for id := range r.libraries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FeatureCount returns the total number of registered callables.
func (r *Registry) FeatureCount() int {
	n := 0
	for _, lib := range r.libraries {
		n += len(lib.features)
	}
	return n
}
