package app

import (
	"github.com/specialistvlad/featuredag/internal/depspec"
	"github.com/specialistvlad/featuredag/internal/registry"
	"github.com/specialistvlad/featuredag/libraries/stats"
)

// SpecProvider is implemented by modules that bundle their own dependency
// specification.
type SpecProvider interface {
	Dependencies() (*depspec.Map, error)
}

// coreModules is the list of feature libraries compiled into the binary.
var coreModules = []registry.Module{
	&stats.Module{},
}

// CoreModules returns the built-in feature libraries.
func CoreModules() []registry.Module {
	return append([]registry.Module(nil), coreModules...)
}
