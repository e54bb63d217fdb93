package domain

import "github.com/google/uuid"

// Neighbors are the ids adjacent to a deficiency in the caller's current view.
type Neighbors struct {
	Previous *uuid.UUID
	Next     *uuid.UUID
}

// Adjacent returns the ids immediately before and after current in ordered.
// ordered must come from the same filter and sort the caller is viewing.
// It returns ErrNotFound when current is not part of that view.
func Adjacent(ordered []uuid.UUID, current uuid.UUID) (Neighbors, error) {
	for i, id := range ordered {
		if id != current {
			continue
		}
		var n Neighbors
		if i > 0 {
			prev := ordered[i-1]
			n.Previous = &prev
		}
		if i+1 < len(ordered) {
			next := ordered[i+1]
			n.Next = &next
		}
		return n, nil
	}
	return Neighbors{}, ErrNotFound
}
