// Package collection implements the shared editor for the ordered lists
// embedded in an owning document (experience, education, likes, comments).
// All edits are in-memory; the caller is responsible for re-persisting
// the owning document afterwards.
package collection

import "github.com/google/uuid"

// Entry is an element of an owned ordered list addressable by a string
// identifier. Likes key on the liking user's id; other entries carry a
// generated id of their own.
type Entry interface {
	EntryID() string
}

// NewID returns a fresh identifier for entries that carry one. Uniqueness
// within the owning list follows from UUID generation; a collision would
// be an invariant violation, not a handled case.
func NewID() string {
	return uuid.NewString()
}

// Prepend inserts entry at the head of list, so the list reads
// newest-first. Existing entries and their identifiers are untouched.
func Prepend[T Entry](list []T, entry T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, entry)
	return append(out, list...)
}

// IndexByID returns the position of the first entry whose identifier
// equals id, or -1 when no entry matches.
func IndexByID[T Entry](list []T, id string) int {
	for i, e := range list {
		if e.EntryID() == id {
			return i
		}
	}
	return -1
}

// ContainsID reports whether any entry in list has the given identifier.
func ContainsID[T Entry](list []T, id string) bool {
	return IndexByID(list, id) >= 0
}

// RemoveByID removes the first entry whose identifier equals id,
// preserving the relative order of the rest. When no entry matches it
// returns the input list unchanged and false; callers must treat that as
// a not-found outcome and must not persist.
func RemoveByID[T Entry](list []T, id string) ([]T, bool) {
	i := IndexByID(list, id)
	if i < 0 {
		return list, false
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...), true
}
