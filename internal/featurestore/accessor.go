package featurestore

// Request is one (name, destination) pair of a batch read.
type Request struct {
	name string
	kind Kind
	read func(*Store) bool
}

// Name returns the requested feature name.
func (r Request) Name() string {
	return r.name
}

// Ints requests the integer vector stored under name into dst.
func Ints(name string, dst *[]int) Request {
	return Request{name: name, kind: KindInt, read: func(s *Store) bool {
		v, err := s.Ints.Get(name)
		if err != nil {
			return false
		}
		*dst = v
		return true
	}}
}

// Doubles requests the real vector stored under name into dst.
func Doubles(name string, dst *[]float64) Request {
	return Request{name: name, kind: KindDouble, read: func(s *Store) bool {
		v, err := s.Doubles.Get(name)
		if err != nil {
			return false
		}
		*dst = v
		return true
	}}
}

// String requests the metadata value stored under name into dst.
func String(name string, dst *string) Request {
	return Request{name: name, kind: KindString, read: func(s *Store) bool {
		v, err := s.Strings.Get(name)
		if err != nil {
			return false
		}
		*dst = v
		return true
	}}
}

// Accessor composes several typed lookups into one read.
type Accessor struct {
	store *Store
}

// Get performs the requests in order and reports whether every requested
// name was cached. It stops at the first miss; destinations of earlier
// requests have already been written by then.
func (a *Accessor) Get(reqs ...Request) bool {
	for _, req := range reqs {
		if !req.read(a.store) {
			return false
		}
	}
	return true
}

// Missing returns the names of the requests that are not cached, in order.
func (a *Accessor) Missing(reqs ...Request) []string {
	var missing []string
	for _, req := range reqs {
		if !a.store.has(req.kind, req.name) {
			missing = append(missing, req.name)
		}
	}
	return missing
}
