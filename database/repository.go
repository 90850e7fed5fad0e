package database

import (
	"time"
)

// Repository provides typed access to the catalog collections
type Repository struct {
	store Store
}

func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// now returns the write timestamp. Millisecond precision matches what
// MongoDB can store, so both backends return identical records.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
