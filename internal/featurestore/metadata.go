package featurestore

// Metadata is a keyed store of single string values.
type Metadata struct {
	values map[string]string
}

func newMetadata() *Metadata {
	return &Metadata{values: make(map[string]string)}
}

// Get returns the value stored under name.
func (m *Metadata) Get(name string) (string, error) {
	val, ok := m.values[name]
	if !ok {
		return "", &NotComputedError{Kind: KindString, Name: name}
	}
	return val, nil
}

// Set stores value under name, replacing any previous value.
func (m *Metadata) Set(name, value string) {
	m.values[name] = value
}

// Has reports whether a value is stored under name.
func (m *Metadata) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Len returns the number of stored values.
func (m *Metadata) Len() int {
	return len(m.values)
}
