package service_test

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/pkordes/sunnytrips/internal/domain"
	"github.com/pkordes/sunnytrips/internal/repo"
)

// memStore is an in-memory stand-in for the Postgres repos. It keeps the
// same contracts (not-found errors, owner checks, cascade on user delete)
// and implements repo.Transactor by snapshotting and restoring its maps.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User
	trips  map[int64]domain.Trip
	tours  map[int64]domain.Tour

	// failTripUpdate, when set, makes Trips.Update fail after any earlier
	// writes in the same unit of work have already been applied.
	failTripUpdate error

	// writes counts successful mutating calls.
	writes int
}

func newMemStore() *memStore {
	return &memStore{
		nextID: domain.MinID,
		users:  map[int64]domain.User{},
		trips:  map[int64]domain.Trip{},
		tours:  map[int64]domain.Tour{},
	}
}

func (s *memStore) repos() repo.Repos {
	return repo.Repos{Users: memUsers{s}, Trips: memTrips{s}, Tours: memTours{s}}
}

func (s *memStore) WithinTx(_ context.Context, fn func(r repo.Repos) error) error {
	s.mu.Lock()
	users, trips, tours := maps.Clone(s.users), maps.Clone(s.trips), maps.Clone(s.tours)
	writes := s.writes
	s.mu.Unlock()

	if err := fn(s.repos()); err != nil {
		s.mu.Lock()
		s.users, s.trips, s.tours, s.writes = users, trips, tours, writes
		s.mu.Unlock()
		return err
	}
	return nil
}

var _ repo.Transactor = (*memStore)(nil)

func (s *memStore) id(requested int64) int64 {
	if requested != 0 {
		return requested
	}
	s.nextID++
	return s.nextID
}

type memUsers struct{ s *memStore }

func (m memUsers) Create(_ context.Context, u domain.User) (domain.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	u.ID = m.s.id(u.ID)
	m.s.users[u.ID] = u
	m.s.writes++
	return u, nil
}

func (m memUsers) GetByID(_ context.Context, id int64) (domain.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	u, ok := m.s.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (m memUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, id := range slices.Sorted(maps.Keys(m.s.users)) {
		if u := m.s.users[id]; u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (m memUsers) List(_ context.Context) ([]domain.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []domain.User
	for _, id := range slices.Sorted(maps.Keys(m.s.users)) {
		out = append(out, m.s.users[id])
	}
	return out, nil
}

func (m memUsers) Update(_ context.Context, u domain.User) (domain.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	cur, ok := m.s.users[u.ID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	u.CreatedAt = cur.CreatedAt
	m.s.users[u.ID] = u
	m.s.writes++
	return u, nil
}

func (m memUsers) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.s.users, id)
	maps.DeleteFunc(m.s.trips, func(_ int64, t domain.Trip) bool { return t.UserID == id })
	maps.DeleteFunc(m.s.tours, func(_ int64, t domain.Tour) bool { return t.UserID == id })
	m.s.writes++
	return nil
}

type memTrips struct{ s *memStore }

func (m memTrips) Create(_ context.Context, t domain.Trip) (domain.Trip, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.users[t.UserID]; !ok {
		return domain.Trip{}, domain.ErrOwnerNotFound
	}
	t.ID = m.s.id(t.ID)
	m.s.trips[t.ID] = t
	m.s.writes++
	return t, nil
}

func (m memTrips) GetByID(_ context.Context, id int64) (domain.Trip, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	t, ok := m.s.trips[id]
	if !ok {
		return domain.Trip{}, domain.ErrNotFound
	}
	return t, nil
}

func (m memTrips) List(_ context.Context) ([]domain.Trip, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return sortedTrips(m.s.trips, func(domain.Trip) bool { return true }), nil
}

func (m memTrips) ListByUserID(_ context.Context, userID int64) ([]domain.Trip, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return sortedTrips(m.s.trips, func(t domain.Trip) bool { return t.UserID == userID }), nil
}

func (m memTrips) Update(_ context.Context, t domain.Trip) (domain.Trip, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failTripUpdate != nil {
		return domain.Trip{}, m.s.failTripUpdate
	}
	cur, ok := m.s.trips[t.ID]
	if !ok {
		return domain.Trip{}, domain.ErrNotFound
	}
	t.UserID = cur.UserID
	m.s.trips[t.ID] = t
	m.s.writes++
	return t, nil
}

func (m memTrips) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.trips[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.s.trips, id)
	m.s.writes++
	return nil
}

type memTours struct{ s *memStore }

func (m memTours) Create(_ context.Context, t domain.Tour) (domain.Tour, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.users[t.UserID]; !ok {
		return domain.Tour{}, domain.ErrOwnerNotFound
	}
	t.ID = m.s.id(t.ID)
	m.s.tours[t.ID] = t
	m.s.writes++
	return t, nil
}

func (m memTours) GetByID(_ context.Context, id int64) (domain.Tour, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	t, ok := m.s.tours[id]
	if !ok {
		return domain.Tour{}, domain.ErrNotFound
	}
	return t, nil
}

func (m memTours) List(_ context.Context) ([]domain.Tour, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return sortedTours(m.s.tours, func(domain.Tour) bool { return true }), nil
}

func (m memTours) ListByUserID(_ context.Context, userID int64) ([]domain.Tour, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return sortedTours(m.s.tours, func(t domain.Tour) bool { return t.UserID == userID }), nil
}

func (m memTours) Update(_ context.Context, t domain.Tour) (domain.Tour, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	cur, ok := m.s.tours[t.ID]
	if !ok {
		return domain.Tour{}, domain.ErrNotFound
	}
	t.UserID = cur.UserID
	m.s.tours[t.ID] = t
	m.s.writes++
	return t, nil
}

func (m memTours) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.tours[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.s.tours, id)
	m.s.writes++
	return nil
}

func sortedTrips(all map[int64]domain.Trip, keep func(domain.Trip) bool) []domain.Trip {
	var out []domain.Trip
	for _, t := range all {
		if keep(t) {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b domain.Trip) int {
		return cmp.Or(a.ScheduledAt.Compare(b.ScheduledAt), cmp.Compare(a.ID, b.ID))
	})
	return out
}

func sortedTours(all map[int64]domain.Tour, keep func(domain.Tour) bool) []domain.Tour {
	var out []domain.Tour
	for _, t := range all {
		if keep(t) {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b domain.Tour) int {
		return cmp.Or(a.ScheduledAt.Compare(b.ScheduledAt), cmp.Compare(a.ID, b.ID))
	})
	return out
}

var errInjected = errors.New("injected failure")
