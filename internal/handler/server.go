// Package handler implements the HTTP handlers for the SunnyTrips API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, user.go, trip.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/sunnytrips/internal/domain"
	"github.com/pkordes/sunnytrips/internal/session"
)

// UserServicer defines the business operations the user handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type UserServicer interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	GetProfile(ctx context.Context, id int64) (domain.UserProfile, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	UpdateFull(ctx context.Context, update domain.UserFullUpdate) (domain.UserProfile, error)
	Delete(ctx context.Context, id int64) error
	Login(ctx context.Context, email, password string) (domain.User, error)
}

// TripServicer defines the business operations the trip handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id int64) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id int64) error
}

// TourServicer defines the business operations the tour handlers depend on.
type TourServicer interface {
	Create(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	GetByID(ctx context.Context, id int64) (domain.Tour, error)
	List(ctx context.Context) ([]domain.Tour, error)
	Update(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	Delete(ctx context.Context, id int64) error
}

// Server holds the dependencies shared by every handler.
// Wire it in main.go via NewRouter.
type Server struct {
	users    UserServicer
	trips    TripServicer
	tours    TourServicer
	sessions *session.Manager
}

// NewServer constructs the Server with all its dependencies.
func NewServer(users UserServicer, trips TripServicer, tours TourServicer, sessions *session.Manager) *Server {
	return &Server{users: users, trips: trips, tours: tours, sessions: sessions}
}

// NewRouter returns a chi router with every API route bound to s.
// Cross-cutting middleware (request id, logging, CORS) is applied by the
// caller on an outer router.
func NewRouter(s *Server) chi.Router {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", s.getHealth)

	r.Route("/usuarios", func(r chi.Router) {
		r.Post("/", s.createUser)
		r.Get("/", s.listUsers)
		r.Post("/login", s.login)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getUser)
			r.Put("/", s.updateUser)
			r.Delete("/", s.deleteUser)
			r.Put("/full", s.updateUserFull)
		})
	})

	r.Route("/viagens", func(r chi.Router) {
		r.Post("/", s.createTrip)
		r.Get("/", s.listTrips)
		r.Get("/{id}", s.getTrip)
		r.Put("/{id}", s.updateTrip)
		r.Delete("/{id}", s.deleteTrip)
	})

	r.Route("/passeios", func(r chi.Router) {
		r.Post("/", s.createTour)
		r.Get("/", s.listTours)
		r.Get("/{id}", s.getTour)
		r.Put("/{id}", s.updateTour)
		r.Delete("/{id}", s.deleteTour)
	})

	r.Get("/sessao", s.getSession)
	r.Post("/logout", s.logout)

	return r
}
