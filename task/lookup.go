package task

import (
	"math"
	"strconv"
)

// ParseID parses a task identifier as a base-10 non-negative integer.
func ParseID(identifier string) (int, bool) {
	id, err := strconv.ParseUint(identifier, 10, 64)
	if err != nil || id > math.MaxInt {
		return 0, false
	}
	return int(id), true
}

// FindByID returns the task whose id matches identifier.
// Identifiers that are not integers never match.
func FindByID(store *Store, identifier string) (*Task, bool) {
	index, ok := indexOf(store, identifier)
	if !ok {
		return nil, false
	}
	return &store.Tasks[index], true
}

func indexOf(store *Store, identifier string) (int, bool) {
	id, ok := ParseID(identifier)
	if !ok {
		return -1, false
	}
	for i := range store.Tasks {
		if store.Tasks[i].ID == id {
			return i, true
		}
	}
	return -1, false
}
