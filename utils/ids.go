package utils

import (
	"github.com/google/uuid"
)

// NewID returns a time-ordered UUIDv7 string for new records, falling back
// to a random v4 if the v7 generator fails.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
