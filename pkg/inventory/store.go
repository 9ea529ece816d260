package inventory

import (
	"cmp"
	"slices"
	"strings"
)

// Store owns the in-memory inventory. It is not safe for concurrent use; the
// console drives it from a single goroutine.
type Store struct {
	items map[string]Item
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{items: make(map[string]Item)}
}

// Add inserts a new item. Surrounding whitespace is stripped from the ID and
// name, matching what a load of the exported file yields. The store is left
// untouched when the identifier is already present or the item is invalid.
func (s *Store) Add(item Item) error {
	item = normalize(item)
	if err := item.Validate(); err != nil {
		return err
	}
	if _, ok := s.items[item.ID]; ok {
		return ErrDuplicateKey
	}
	s.items[item.ID] = item
	return nil
}

// Get returns a copy of the item stored under id.
func (s *Store) Get(id string) (Item, bool) {
	item, ok := s.items[id]
	return item, ok
}

// Remove deletes the item and reports whether it was present.
func (s *Store) Remove(id string) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// Update applies the non-nil fields of patch and returns the updated item.
func (s *Store) Update(id string, patch Patch) (Item, error) {
	item, ok := s.items[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	if patch.Empty() {
		return item, nil
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if err := item.Validate(); err != nil {
		return Item{}, err
	}
	s.items[id] = item
	return item, nil
}

// List returns every item ordered by identifier.
func (s *Store) List() []Item {
	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sortByID(out)
	return out
}

// Len reports how many items are stored.
func (s *Store) Len() int {
	return len(s.items)
}

// Replace swaps the whole content for items, typically right after a load.
// Later entries win when identifiers repeat; invalid entries are dropped and
// counted in the returned value.
func (s *Store) Replace(items []Item) (skipped int) {
	next := make(map[string]Item, len(items))
	for _, item := range items {
		item = normalize(item)
		if item.Validate() != nil {
			skipped++
			continue
		}
		next[item.ID] = item
	}
	s.items = next
	return skipped
}

func sortByID(items []Item) {
	slices.SortFunc(items, func(a, b Item) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

func normalize(item Item) Item {
	item.ID = strings.TrimSpace(item.ID)
	item.Name = strings.TrimSpace(item.Name)
	return item
}
