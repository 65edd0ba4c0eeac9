package featurestore

// Snapshot is a plain copy of a store's contents, used to seed inputs and
// to report results.
type Snapshot struct {
	Ints    map[string][]int     `yaml:"ints,omitempty" json:"ints,omitempty"`
	Doubles map[string][]float64 `yaml:"doubles,omitempty" json:"doubles,omitempty"`
	Strings map[string]string    `yaml:"strings,omitempty" json:"strings,omitempty"`
}

// Snapshot copies the current contents of the store.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Ints:    make(map[string][]int, s.Ints.Len()),
		Doubles: make(map[string][]float64, s.Doubles.Len()),
		Strings: make(map[string]string, s.Strings.Len()),
	}
	for k, v := range s.Ints.values {
		snap.Ints[k] = clone(v)
	}
	for k, v := range s.Doubles.values {
		snap.Doubles[k] = clone(v)
	}
	for k, v := range s.Strings.values {
		snap.Strings[k] = v
	}
	return snap
}

// Load stores every value of snap, replacing existing values of the same
// names.
func (s *Store) Load(snap Snapshot) {
	for k, v := range snap.Ints {
		s.Ints.Set(k, v)
	}
	for k, v := range snap.Doubles {
		s.Doubles.Set(k, v)
	}
	for k, v := range snap.Strings {
		s.Strings.Set(k, v)
	}
}
