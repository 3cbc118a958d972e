package domain

import "math/rand/v2"

// Bounds of the generated identifier range: [MinID, MaxID).
const (
	MinID int64 = 100000
	MaxID int64 = 1000000
)

// NewID returns a random six-digit identifier in [MinID, MaxID).
// Uniqueness is not checked here; repositories retry on collision.
func NewID() int64 {
	return MinID + rand.Int64N(MaxID-MinID)
}
