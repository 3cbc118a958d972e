package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pkordes/sunnytrips/internal/domain"
	"github.com/pkordes/sunnytrips/internal/repo"
)

// TourService implements business logic for Tour operations.
type TourService struct {
	users repo.UserRepo
	tours repo.TourRepo
}

// NewTourService constructs a TourService backed by the provided repos.
func NewTourService(users repo.UserRepo, tours repo.TourRepo) *TourService {
	return &TourService{users: users, tours: tours}
}

// Create validates the tour, verifies the owner exists, then persists.
// Returns domain.ErrOwnerNotFound if tour.UserID names no user.
func (s *TourService) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	if err := validateTour("", tour, time.Now()); err != nil {
		return domain.Tour{}, err
	}
	if _, err := s.users.GetByID(ctx, tour.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w: user %d", domain.ErrOwnerNotFound, tour.UserID)
		}
		return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w", err)
	}
	result, err := s.tours.Create(ctx, tour)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w", err)
	}
	return result, nil
}

func (s *TourService) GetByID(ctx context.Context, id int64) (domain.Tour, error) {
	result, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all tours, never nil.
func (s *TourService) List(ctx context.Context) ([]domain.Tour, error) {
	tours, err := s.tours.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TourService.List: %w", err)
	}
	if tours == nil {
		return []domain.Tour{}, nil
	}
	return tours, nil
}

func (s *TourService) Update(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	if err := validateTour("", tour, time.Now()); err != nil {
		return domain.Tour{}, err
	}
	result, err := s.tours.Update(ctx, tour)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Update: %w", err)
	}
	return result, nil
}

func (s *TourService) Delete(ctx context.Context, id int64) error {
	if err := s.tours.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TourService.Delete: %w", err)
	}
	return nil
}
