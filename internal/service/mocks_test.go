package service_test

import (
	"context"

	"github.com/pkordes/sunnytrips/internal/domain"
	"github.com/pkordes/sunnytrips/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field; set only the ones your test needs.

type mockUserRepo struct {
	create     func(ctx context.Context, user domain.User) (domain.User, error)
	getByID    func(ctx context.Context, id int64) (domain.User, error)
	getByEmail func(ctx context.Context, email string) (domain.User, error)
	list       func(ctx context.Context) ([]domain.User, error)
	update     func(ctx context.Context, user domain.User) (domain.User, error)
	delete     func(ctx context.Context, id int64) error
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return m.create(ctx, user)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	return m.list(ctx)
}
func (m *mockUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	return m.update(ctx, user)
}
func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockTripRepo struct {
	create       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID      func(ctx context.Context, id int64) (domain.Trip, error)
	list         func(ctx context.Context) ([]domain.Trip, error)
	listByUserID func(ctx context.Context, userID int64) ([]domain.Trip, error)
	update       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete       func(ctx context.Context, id int64) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Trip, error) {
	return m.listByUserID(ctx, userID)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockTourRepo struct {
	create       func(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	getByID      func(ctx context.Context, id int64) (domain.Tour, error)
	list         func(ctx context.Context) ([]domain.Tour, error)
	listByUserID func(ctx context.Context, userID int64) ([]domain.Tour, error)
	update       func(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	delete       func(ctx context.Context, id int64) error
}

func (m *mockTourRepo) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	return m.create(ctx, tour)
}
func (m *mockTourRepo) GetByID(ctx context.Context, id int64) (domain.Tour, error) {
	return m.getByID(ctx, id)
}
func (m *mockTourRepo) List(ctx context.Context) ([]domain.Tour, error) {
	return m.list(ctx)
}
func (m *mockTourRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Tour, error) {
	return m.listByUserID(ctx, userID)
}
func (m *mockTourRepo) Update(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	return m.update(ctx, tour)
}
func (m *mockTourRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.UserRepo = (*mockUserRepo)(nil)
	_ repo.TripRepo = (*mockTripRepo)(nil)
	_ repo.TourRepo = (*mockTourRepo)(nil)
)

// existingUser is a mockUserRepo whose GetByID finds only id.
func existingUser(id int64) *mockUserRepo {
	return &mockUserRepo{
		getByID: func(_ context.Context, got int64) (domain.User, error) {
			if got != id {
				return domain.User{}, domain.ErrNotFound
			}
			return domain.User{ID: id, Name: "Ana"}, nil
		},
	}
}
