package inventory

import "strings"

// Search scans every item and returns all whose identifier or name equals
// query, ignoring case. The result is empty, never nil, when nothing matches.
func (s *Store) Search(query string) []Item {
	found := []Item{}
	for _, item := range s.items {
		if matches(item, query) {
			found = append(found, item)
		}
	}
	sortByID(found)
	return found
}

func matches(item Item, query string) bool {
	return strings.EqualFold(item.ID, query) || strings.EqualFold(item.Name, query)
}
