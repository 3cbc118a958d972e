// Package domain contains the core data types for the SunnyTrips application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// User is a registered traveller. A user exclusively owns its trips and tours;
// deleting the user deletes them.
//
// Password is stored and compared as plain text.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Country   string
	State     string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserProfile is a user together with every trip and tour it owns.
type UserProfile struct {
	User  User
	Trips []Trip
	Tours []Tour
}

// UserFullUpdate carries a compound update: new basic fields for the user
// plus field overwrites for trips and tours the user already owns.
// Trips and Tours must be non-nil; an empty slice leaves that collection alone.
type UserFullUpdate struct {
	User  User
	Trips []TripUpdate
	Tours []TourUpdate
}
