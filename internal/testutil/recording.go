package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/specialistvlad/featuredag/internal/registry"
)

// RecordingModule is a feature library for tests. Every registered feature
// stores a one-element double vector under the call's name and records the
// call, so tests can assert on execution order and cache hits.
type RecordingModule struct {
	// Features lists "Library:feature" pairs to register.
	Features []string
	// Fail makes the named feature (local name) return the given error.
	Fail map[string]error
	// Forgetful names local features that succeed without storing a value.
	Forgetful map[string]bool

	mu    sync.Mutex
	calls []string
}

// NewRecordingModule registers the given "Library:feature" pairs.
func NewRecordingModule(features ...string) *RecordingModule {
	return &RecordingModule{Features: features}
}

// Register implements the registry.Module interface.
func (m *RecordingModule) Register(r *registry.Registry) {
	for _, f := range m.Features {
		library, feature, _ := strings.Cut(f, ":")
		r.Register(library, feature, m.call)
	}
}

func (m *RecordingModule) call(_ context.Context, call *registry.Call) error {
	m.mu.Lock()
	m.calls = append(m.calls, call.Name)
	n := len(m.calls)
	m.mu.Unlock()

	if err := m.Fail[call.Feature.Feature]; err != nil {
		return err
	}
	if m.Forgetful[call.Feature.Feature] {
		return nil
	}
	call.Store.Doubles.Set(call.Name, []float64{float64(n)})
	return nil
}

// Calls returns the wildcard-qualified names invoked so far, in order.
func (m *RecordingModule) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset forgets the recorded calls.
func (m *RecordingModule) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
