// Package service contains the business logic for the SunnyTrips API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pkordes/sunnytrips/internal/domain"
	"github.com/pkordes/sunnytrips/internal/repo"
)

// UserService implements business logic for User operations, including the
// compound full update that reconciles a user's trips and tours.
type UserService struct {
	repos repo.Repos
	tx    repo.Transactor
}

// NewUserService constructs a UserService. repos serves single-statement
// operations; tx wraps the full update in one transaction.
func NewUserService(repos repo.Repos, tx repo.Transactor) *UserService {
	return &UserService{repos: repos, tx: tx}
}

// Create validates and persists a new user. The identifier is generated by
// the store when unset.
func (s *UserService) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if err := validateUser(user); err != nil {
		return domain.User{}, err
	}
	result, err := s.repos.Users.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}
	return result, nil
}

// List returns all users.
// Always returns a non-nil slice so callers can safely range over it.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repos.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.UserService.List: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// GetProfile returns the user with every trip and tour it owns.
// Returns domain.ErrNotFound if the user does not exist.
func (s *UserService) GetProfile(ctx context.Context, id int64) (domain.UserProfile, error) {
	profile, err := loadProfile(ctx, s.repos, id)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("service.UserService.GetProfile: %w", err)
	}
	return profile, nil
}

// Update validates and overwrites the basic fields of an existing user.
// The user's trips and tours are not touched.
func (s *UserService) Update(ctx context.Context, user domain.User) (domain.User, error) {
	if err := validateUser(user); err != nil {
		return domain.User{}, err
	}
	result, err := s.repos.Users.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Update: %w", err)
	}
	return result, nil
}

// UpdateFull applies a compound update to a user and the trips and tours it
// already owns, all or nothing. The whole update is validated, then the
// current profile is loaded and reconciled in memory inside one transaction;
// only when every incoming id matched are the changes written.
//
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// user does not exist, and domain.ErrReconciliationMismatch if an incoming id
// is not owned by the user. On any error the store is left unchanged.
func (s *UserService) UpdateFull(ctx context.Context, update domain.UserFullUpdate) (domain.UserProfile, error) {
	if err := validateFullUpdate(update, time.Now()); err != nil {
		return domain.UserProfile{}, err
	}

	var result domain.UserProfile
	err := s.tx.WithinTx(ctx, func(r repo.Repos) error {
		current, err := loadProfile(ctx, r, update.User.ID)
		if err != nil {
			return err
		}

		rec, err := reconcile(current, update)
		if err != nil {
			return err
		}

		if _, err := r.Users.Update(ctx, rec.profile.User); err != nil {
			return err
		}
		for _, t := range rec.trips {
			if _, err := r.Trips.Update(ctx, t); err != nil {
				return err
			}
		}
		for _, t := range rec.tours {
			if _, err := r.Tours.Update(ctx, t); err != nil {
				return err
			}
		}

		result, err = loadProfile(ctx, r, update.User.ID)
		return err
	})
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("service.UserService.UpdateFull: %w", err)
	}
	return result, nil
}

// Delete removes a user and, by cascade, every trip and tour it owns.
// Returns domain.ErrNotFound if the user does not exist.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repos.Users.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.UserService.Delete: %w", err)
	}
	return nil
}

// Login returns the user registered with email when password matches the
// stored one exactly. An unknown email and a wrong password both yield
// domain.ErrUnauthorized.
//
// Passwords are stored and compared as plain text.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repos.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, fmt.Errorf("service.UserService.Login: %w", domain.ErrUnauthorized)
		}
		return domain.User{}, fmt.Errorf("service.UserService.Login: %w", err)
	}
	if user.Password != password {
		return domain.User{}, fmt.Errorf("service.UserService.Login: %w", domain.ErrUnauthorized)
	}
	return user, nil
}

// loadProfile reads a user and its children through r.
// Child slices are never nil.
func loadProfile(ctx context.Context, r repo.Repos, id int64) (domain.UserProfile, error) {
	user, err := r.Users.GetByID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, err
	}
	trips, err := r.Trips.ListByUserID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, err
	}
	tours, err := r.Tours.ListByUserID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	if tours == nil {
		tours = []domain.Tour{}
	}
	return domain.UserProfile{User: user, Trips: trips, Tours: tours}, nil
}
