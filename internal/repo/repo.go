// Package repo contains all database access logic for the SunnyTrips API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/sunnytrips/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// txBeginner is satisfied by *pgxpool.Pool and by pgx.Tx (nested transactions
// become savepoints).
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// maxIDAttempts bounds how many random identifiers an insert tries before
// giving up with domain.ErrIDExhausted.
const maxIDAttempts = 5

// foreignKeyViolation is the Postgres SQLSTATE for a failed FK reference.
const foreignKeyViolation = "23503"

type options struct {
	newID func() int64
}

// Option configures the repositories built by the constructors in this package.
type Option func(*options)

// WithIDGenerator replaces domain.NewID as the identifier source.
// Tests use it to force collisions.
func WithIDGenerator(f func() int64) Option {
	return func(o *options) { o.newID = f }
}

func buildOptions(opts []Option) options {
	o := options{newID: domain.NewID}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Repos groups the three repositories so they can share one connection or
// transaction.
type Repos struct {
	Users UserRepo
	Trips TripRepo
	Tours TourRepo
}

// NewRepos builds all repositories on top of the same db handle.
func NewRepos(db db, opts ...Option) Repos {
	return Repos{
		Users: NewUserRepo(db, opts...),
		Trips: NewTripRepo(db, opts...),
		Tours: NewTourRepo(db, opts...),
	}
}

// Transactor runs a unit of work against repositories bound to a single
// database transaction. If fn returns an error the transaction is rolled back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}

type pgTransactor struct {
	db   txBeginner
	opts []Option
}

// NewTransactor constructs a Transactor that begins transactions on db.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewTransactor(db txBeginner, opts ...Option) Transactor {
	return &pgTransactor{db: db, opts: opts}
}

func (t *pgTransactor) WithinTx(ctx context.Context, fn func(r Repos) error) error {
	err := pgx.BeginFunc(ctx, t.db, func(tx pgx.Tx) error {
		return fn(NewRepos(tx, t.opts...))
	})
	if err != nil {
		return fmt.Errorf("repo.Transactor.WithinTx: %w", err)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// insertWithID calls insert with id, or with freshly generated ids when id is
// zero. insert must report an id collision as domain.ErrNotFound (the
// ON CONFLICT DO NOTHING ... RETURNING clause yields no row).
// A caller-supplied id is tried exactly once.
func insertWithID[T any](id int64, newID func() int64, insert func(id int64) (T, error)) (T, error) {
	var zero T
	fixed := id != 0
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		if !fixed {
			id = newID()
		}
		result, err := insert(id)
		if errors.Is(err, domain.ErrNotFound) {
			if fixed {
				break
			}
			continue
		}
		return result, err
	}
	return zero, domain.ErrIDExhausted
}

// isForeignKeyViolation reports whether err is a Postgres FK violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
