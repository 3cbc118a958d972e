package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/sunnytrips/internal/domain"
	"github.com/pkordes/sunnytrips/internal/handler"
	"github.com/pkordes/sunnytrips/internal/session"
)

// Test doubles for the servicer interfaces.
// Set only the method fields your test needs.

type mockUserServicer struct {
	create     func(ctx context.Context, user domain.User) (domain.User, error)
	list       func(ctx context.Context) ([]domain.User, error)
	getProfile func(ctx context.Context, id int64) (domain.UserProfile, error)
	update     func(ctx context.Context, user domain.User) (domain.User, error)
	updateFull func(ctx context.Context, update domain.UserFullUpdate) (domain.UserProfile, error)
	delete     func(ctx context.Context, id int64) error
	login      func(ctx context.Context, email, password string) (domain.User, error)
}

func (m *mockUserServicer) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserServicer) List(ctx context.Context) ([]domain.User, error) {
	return m.list(ctx)
}
func (m *mockUserServicer) GetProfile(ctx context.Context, id int64) (domain.UserProfile, error) {
	return m.getProfile(ctx, id)
}
func (m *mockUserServicer) Update(ctx context.Context, u domain.User) (domain.User, error) {
	return m.update(ctx, u)
}
func (m *mockUserServicer) UpdateFull(ctx context.Context, upd domain.UserFullUpdate) (domain.UserProfile, error) {
	return m.updateFull(ctx, upd)
}
func (m *mockUserServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockUserServicer) Login(ctx context.Context, email, password string) (domain.User, error) {
	return m.login(ctx, email, password)
}

type mockTripServicer struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id int64) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockTourServicer struct {
	create  func(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	getByID func(ctx context.Context, id int64) (domain.Tour, error)
	list    func(ctx context.Context) ([]domain.Tour, error)
	update  func(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockTourServicer) Create(ctx context.Context, t domain.Tour) (domain.Tour, error) {
	return m.create(ctx, t)
}
func (m *mockTourServicer) GetByID(ctx context.Context, id int64) (domain.Tour, error) {
	return m.getByID(ctx, id)
}
func (m *mockTourServicer) List(ctx context.Context) ([]domain.Tour, error) {
	return m.list(ctx)
}
func (m *mockTourServicer) Update(ctx context.Context, t domain.Tour) (domain.Tour, error) {
	return m.update(ctx, t)
}
func (m *mockTourServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.UserServicer = (*mockUserServicer)(nil)
	_ handler.TripServicer = (*mockTripServicer)(nil)
	_ handler.TourServicer = (*mockTourServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

const testSecret = "test-secret"

func testSessions() *session.Manager {
	return session.NewManager(testSecret, time.Hour)
}

// deps collects the mocks for one test; nil servicers are replaced with
// empty mocks so an unexpected call panics instead of hitting a nil interface.
type deps struct {
	users *mockUserServicer
	trips *mockTripServicer
	tours *mockTourServicer
}

// newHTTPHandler wires a Server with the given mocks into the router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(d deps) http.Handler {
	if d.users == nil {
		d.users = &mockUserServicer{}
	}
	if d.trips == nil {
		d.trips = &mockTripServicer{}
	}
	if d.tours == nil {
		d.tours = &mockTourServicer{}
	}
	return handler.NewRouter(handler.NewServer(d.users, d.trips, d.tours, testSessions()))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// errorBody mirrors the JSON error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, b *bytes.Buffer) errorBody {
	t.Helper()
	var e errorBody
	require.NoError(t, json.NewDecoder(b).Decode(&e))
	return e
}

var scheduled = time.Date(2031, 5, 10, 14, 30, 0, 0, time.UTC)

const scheduledWire = "2031-05-10T14:30:00"

func anaUser() domain.User {
	return domain.User{
		ID:       123456,
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "segredo123",
		Country:  "Brasil",
		State:    "SP",
		City:     "Campinas",
	}
}
