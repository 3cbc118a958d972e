package service

import (
	"fmt"
	"slices"

	"github.com/pkordes/sunnytrips/internal/domain"
)

// reconciliation is the in-memory result of applying a full update to a
// profile: the new profile plus the children that must be written back.
type reconciliation struct {
	profile domain.UserProfile
	trips   []domain.Trip
	tours   []domain.Tour
}

// reconcile applies update to current without touching the store or the
// input. Each trip/tour update overwrites the owned record with the same id;
// an id the user does not own fails the whole reconciliation with
// domain.ErrReconciliationMismatch. Records are never added or removed.
//
// Trips are matched before tours. Repeated ids apply in order, so the last
// one wins.
func reconcile(current domain.UserProfile, update domain.UserFullUpdate) (reconciliation, error) {
	owner := current.User.ID

	next := domain.UserProfile{
		User:  current.User,
		Trips: slices.Clone(current.Trips),
		Tours: slices.Clone(current.Tours),
	}
	next.User.Name = update.User.Name
	next.User.Email = update.User.Email
	next.User.Password = update.User.Password
	next.User.Country = update.User.Country
	next.User.State = update.User.State
	next.User.City = update.User.City

	tripAt := make(map[int64]int, len(next.Trips))
	for i, t := range next.Trips {
		if t.UserID == owner {
			tripAt[t.ID] = i
		}
	}
	var touchedTrips []int
	for _, u := range update.Trips {
		i, ok := tripAt[u.ID]
		if !ok {
			return reconciliation{}, fmt.Errorf("%w: viagem %d not found for user %d",
				domain.ErrReconciliationMismatch, u.ID, owner)
		}
		next.Trips[i] = u.Apply(next.Trips[i])
		if !slices.Contains(touchedTrips, i) {
			touchedTrips = append(touchedTrips, i)
		}
	}

	tourAt := make(map[int64]int, len(next.Tours))
	for i, t := range next.Tours {
		if t.UserID == owner {
			tourAt[t.ID] = i
		}
	}
	var touchedTours []int
	for _, u := range update.Tours {
		i, ok := tourAt[u.ID]
		if !ok {
			return reconciliation{}, fmt.Errorf("%w: passeio %d not found for user %d",
				domain.ErrReconciliationMismatch, u.ID, owner)
		}
		next.Tours[i] = u.Apply(next.Tours[i])
		if !slices.Contains(touchedTours, i) {
			touchedTours = append(touchedTours, i)
		}
	}

	rec := reconciliation{profile: next}
	for _, i := range touchedTrips {
		rec.trips = append(rec.trips, next.Trips[i])
	}
	for _, i := range touchedTours {
		rec.tours = append(rec.tours, next.Tours[i])
	}
	return rec, nil
}
