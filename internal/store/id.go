package store

import "github.com/google/uuid"

// newID generates a record identifier. Time-ordered v7 UUIDs keep insertion
// order roughly visible in the id; falls back to v4 if v7 generation fails.
func newID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
