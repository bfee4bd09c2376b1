// Package page implements cursor and offset pagination over in-memory
// slices. The helpers are policy-free building blocks: each resource
// decides its own ordering, cursor combination rules and unknown-cursor
// behavior, and composes them from After/Before/Window.
package page

// After returns the portion of items strictly after the element whose
// id equals cursor, plus whether the cursor matched anything. When the
// cursor is unknown the full slice is returned unchanged so the caller
// can pick between an empty page and a not-found error.
func After[T any](items []T, id func(T) string, cursor string) ([]T, bool) {
	for i, it := range items {
		if id(it) == cursor {
			return items[i+1:], true
		}
	}
	return items, false
}

// Before returns the portion of items strictly before the element whose
// id equals cursor, plus whether the cursor matched anything.
func Before[T any](items []T, id func(T) string, cursor string) ([]T, bool) {
	for i, it := range items {
		if id(it) == cursor {
			return items[:i], true
		}
	}
	return items, false
}

// Window truncates items to at most limit elements and reports whether
// anything was cut off. A limit below zero means no truncation.
func Window[T any](items []T, limit int) ([]T, bool) {
	if limit < 0 || len(items) <= limit {
		return items, false
	}
	return items[:limit], true
}

// Offset slices items into fixed-size pages and returns the page at the
// given zero-based index. ok is false when the page index falls outside
// the available range; page zero of an empty slice is always in range.
func Offset[T any](items []T, size, number int) ([]T, bool) {
	if size <= 0 || number < 0 {
		return nil, false
	}
	start := number * size
	if start >= len(items) {
		if number == 0 {
			return nil, true
		}
		return nil, false
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], true
}

// Reversed returns a copy of items in reverse order.
func Reversed[T any](items []T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}
