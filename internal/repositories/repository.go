package repositories

import "errors"

// ErrNotFound is returned when an id does not resolve to a stored record.
var ErrNotFound = errors.New("record not found")

// ListOptions controls ordering and size of a product listing. SortBy must
// already be a known column; the service enforces the allow-list.
type ListOptions struct {
	SortBy     string
	Descending bool
	Limit      int
}
