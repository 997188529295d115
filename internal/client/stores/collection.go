// Package stores implements the per-entity caches for airlines, airports,
// flights and tickets. Every store follows the same shape: fetch, classify
// failures into the store's error field, and mutate a local collection.
// Like the session, stores are written for single-goroutine use.
package stores

// replaceByID swaps the entry whose id matches for item, keeping the entry's
// storage key. Reports whether a match was found.
func replaceByID[T any](list []T, id int, item T, idOf func(T) int, keep func(dst *T, src T)) bool {
	for i := range list {
		if idOf(list[i]) == id {
			old := list[i]
			list[i] = item
			keep(&list[i], old)
			return true
		}
	}
	return false
}

// removeByID returns the list without the entry whose id matches.
func removeByID[T any](list []T, id int, idOf func(T) int) []T {
	for i := range list {
		if idOf(list[i]) == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
