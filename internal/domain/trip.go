package domain

import "time"

// Trip ("viagem") is a scheduled journey to a destination, owned by one user.
type Trip struct {
	ID                 int64
	UserID             int64
	DestinationCountry string
	DestinationState   string
	DestinationCity    string
	ScheduledAt        time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TripUpdate overwrites the mutable fields of the trip with the same ID.
type TripUpdate struct {
	ID                 int64
	DestinationCountry string
	DestinationState   string
	DestinationCity    string
	ScheduledAt        time.Time
}

// Apply copies the update's fields onto t. ID and UserID are left untouched.
func (u TripUpdate) Apply(t Trip) Trip {
	t.DestinationCountry = u.DestinationCountry
	t.DestinationState = u.DestinationState
	t.DestinationCity = u.DestinationCity
	t.ScheduledAt = u.ScheduledAt
	return t
}
