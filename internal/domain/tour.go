package domain

import "time"

// Tour ("passeio") is a scheduled local activity at a specific place,
// owned by one user.
type Tour struct {
	ID          int64
	UserID      int64
	Location    string
	ScheduledAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TourUpdate overwrites the mutable fields of the tour with the same ID.
type TourUpdate struct {
	ID          int64
	Location    string
	ScheduledAt time.Time
}

// Apply copies the update's fields onto t. ID and UserID are left untouched.
func (u TourUpdate) Apply(t Tour) Tour {
	t.Location = u.Location
	t.ScheduledAt = u.ScheduledAt
	return t
}
