package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pkordes/sunnytrips/internal/domain"
	"github.com/pkordes/sunnytrips/internal/repo"
)

// TripService implements business logic for Trip operations.
// It holds the users repo because creating a trip requires verifying the
// owning user exists.
type TripService struct {
	users repo.UserRepo
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(users repo.UserRepo, trips repo.TripRepo) *TripService {
	return &TripService{users: users, trips: trips}
}

// Create validates the trip, verifies the owner exists, then persists.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrOwnerNotFound if trip.UserID names no user.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip("", trip, time.Now()); err != nil {
		return domain.Trip{}, err
	}
	if _, err := s.users.GetByID(ctx, trip.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: user %d", domain.ErrOwnerNotFound, trip.UserID)
		}
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and persists new destination and schedule values for an
// existing trip. The owner never changes.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip("", trip, time.Now()); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id int64) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}
