package favourites

// Set is an immutable set of favourite station ids. Operations return a new
// Set; the receiver is never modified. Ids keep the order they were added in.
type Set struct {
	ids []string
}

// NewSet builds a set from ids, dropping duplicates and empty ids
func NewSet(ids ...string) Set {
	var s Set
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		s.ids = append(s.ids, id)
	}
	return s
}

// Has reports whether id is a favourite
func (s Set) Has(id string) bool {
	for _, fav := range s.ids {
		if fav == id {
			return true
		}
	}
	return false
}

// Len returns the number of favourites
func (s Set) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the ids in insertion order
func (s Set) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Toggle removes id if present and appends it otherwise
func (s Set) Toggle(id string) Set {
	if id == "" {
		return s
	}

	if !s.Has(id) {
		next := make([]string, len(s.ids), len(s.ids)+1)
		copy(next, s.ids)
		return Set{ids: append(next, id)}
	}

	next := make([]string, 0, len(s.ids)-1)
	for _, fav := range s.ids {
		if fav != id {
			next = append(next, fav)
		}
	}
	return Set{ids: next}
}

// Equal reports whether both sets hold the same ids, ignoring order
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
