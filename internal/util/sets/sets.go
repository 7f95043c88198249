package sets

// Set is a generic hash set for comparable keys.
// Usage: s := make(sets.Set[string]); s.Add("c"); if s.Has("b") {...}
type Set[T comparable] map[T]struct{}

// Add inserts value into the set.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has returns true if v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Difference returns the members of s absent from other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	out := make(Set[T])
	for k := range s {
		if !other.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}
