package runner

// Store holds the live entities of one kind in spawn order.
// Removal is by index; callers that remove while iterating walk backwards so
// unvisited indices stay valid.
type Store struct {
	kind  Kind
	items []Entity
}

// NewStore creates an empty store for the given kind.
func NewStore(kind Kind) *Store {
	return &Store{
		kind:  kind,
		items: make([]Entity, 0, kind.Capacity()),
	}
}

// Kind returns the kind of entity held by the store.
func (s *Store) Kind() Kind {
	return s.kind
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.items)
}

// Full reports whether the store is at capacity.
func (s *Store) Full() bool {
	return len(s.items) >= s.kind.Capacity()
}

// Items returns the live entities. The slice must not be modified.
func (s *Store) Items() []Entity {
	return s.items
}

// Append adds an entity at the end of the store.
// Returns false without adding if the store is full.
func (s *Store) Append(e Entity) bool {
	if s.Full() {
		return false
	}
	s.items = append(s.items, e)
	return true
}

// RemoveAt deletes the entity at index i, keeping the order of the rest.
func (s *Store) RemoveAt(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// Clear removes every entity.
func (s *Store) Clear() {
	s.items = s.items[:0]
}
