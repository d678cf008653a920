package world

// ItemSet is an ordered collection of items, unique by name. Iteration
// order is insertion order so that "first usable weapon" is stable.
type ItemSet struct {
	items []*Item
}

// NewItemSet creates an empty set.
func NewItemSet() *ItemSet {
	return &ItemSet{}
}

// Add appends an item. It returns false, leaving the set unchanged, when an
// item with the same name is already present.
func (s *ItemSet) Add(it *Item) bool {
	if s.Get(it.Name) != nil {
		return false
	}
	s.items = append(s.items, it)
	return true
}

// Get returns the item with the given name, or nil.
func (s *ItemSet) Get(name string) *Item {
	for _, it := range s.items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// Has reports whether an item with the given name is present.
func (s *ItemSet) Has(name string) bool {
	return s.Get(name) != nil
}

// Remove takes the named item out of the set and returns it, or nil.
func (s *ItemSet) Remove(name string) *Item {
	for i, it := range s.items {
		if it.Name == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return it
		}
	}
	return nil
}

// Clear empties the set and returns what it held.
func (s *ItemSet) Clear() []*Item {
	out := s.items
	s.items = nil
	return out
}

// Items returns a copy of the items in insertion order.
func (s *ItemSet) Items() []*Item {
	out := make([]*Item, len(s.items))
	copy(out, s.items)
	return out
}

// Names returns the item names in insertion order.
func (s *ItemSet) Names() []string {
	names := make([]string, 0, len(s.items))
	for _, it := range s.items {
		names = append(names, it.Name)
	}
	return names
}

// Len returns the number of items.
func (s *ItemSet) Len() int {
	return len(s.items)
}
