package featurestore

// Store is the per-input feature value cache.
type Store struct {
	Ints    *Vectors[int]
	Doubles *Vectors[float64]
	Strings *Metadata
}

// New creates an empty store.
func New() *Store {
	return &Store{
		Ints:    newVectors[int](KindInt),
		Doubles: newVectors[float64](KindDouble),
		Strings: newMetadata(),
	}
}

// NewWithSettings creates a store whose metadata is seeded with settings.
func NewWithSettings(settings map[string]string) *Store {
	s := New()
	for k, v := range settings {
		s.Strings.Set(k, v)
	}
	return s
}

// Contains reports whether any of the three stores holds name.
func (s *Store) Contains(name string) bool {
	return s.Ints.Has(name) || s.Doubles.Has(name) || s.Strings.Has(name)
}

// Accessor returns a batch-read view over the store.
func (s *Store) Accessor() *Accessor {
	return &Accessor{store: s}
}

func (s *Store) has(kind Kind, name string) bool {
	switch kind {
	case KindInt:
		return s.Ints.Has(name)
	case KindDouble:
		return s.Doubles.Has(name)
	case KindString:
		return s.Strings.Has(name)
	}
	return false
}
