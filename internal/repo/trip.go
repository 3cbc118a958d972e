package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/sunnytrips/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// Ownership lives only on the trip row (usuario_id).
type TripRepo interface {
	// Create inserts a new trip for trip.UserID and returns the persisted record.
	// Returns domain.ErrOwnerNotFound if the owning user does not exist.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Trip, error)

	// List returns all trips ordered by scheduled date-time.
	List(ctx context.Context) ([]domain.Trip, error)

	// ListByUserID returns the trips owned by userID ordered by scheduled date-time.
	ListByUserID(ctx context.Context, userID int64) ([]domain.Trip, error)

	// Update overwrites the destination and schedule of an existing trip.
	// The id and owner are never written.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db    db
	newID func() int64
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db, opts ...Option) TripRepo {
	o := buildOptions(opts)
	return &pgTripRepo{db: db, newID: o.newID}
}

const tripColumns = `id, usuario_id, pais_destino, estado_destino, cidade_destino, data_hora, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO viagens (id, usuario_id, pais_destino, estado_destino, cidade_destino, data_hora)
		VALUES (@id, @usuario_id, @pais_destino, @estado_destino, @cidade_destino, @data_hora)
		ON CONFLICT (id) DO NOTHING
		RETURNING ` + tripColumns

	result, err := insertWithID(trip.ID, r.newID, func(id int64) (domain.Trip, error) {
		args := pgx.NamedArgs{
			"id":             id,
			"usuario_id":     trip.UserID,
			"pais_destino":   trip.DestinationCountry,
			"estado_destino": trip.DestinationState,
			"cidade_destino": trip.DestinationCity,
			"data_hora":      trip.ScheduledAt,
		}
		return scanTrip(r.db.QueryRow(ctx, q, args))
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w: user %d", domain.ErrOwnerNotFound, trip.UserID)
		}
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM viagens WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns every trip, soonest first.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM viagens ORDER BY data_hora, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

// ListByUserID returns the trips owned by userID, soonest first.
func (r *pgTripRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM viagens WHERE usuario_id = @usuario_id ORDER BY data_hora, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"usuario_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUserID: %w", err)
	}
	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUserID: %w", err)
	}
	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE viagens
		SET pais_destino   = @pais_destino,
		    estado_destino = @estado_destino,
		    cidade_destino = @cidade_destino,
		    data_hora      = @data_hora,
		    updated_at     = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":             trip.ID,
		"pais_destino":   trip.DestinationCountry,
		"estado_destino": trip.DestinationState,
		"cidade_destino": trip.DestinationCity,
		"data_hora":      trip.ScheduledAt,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM viagens WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// collectTrips drains rows into a slice and closes them.
func collectTrips(rows pgx.Rows) ([]domain.Trip, error) {
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var t domain.Trip
	err := s.Scan(&t.ID, &t.UserID, &t.DestinationCountry, &t.DestinationState, &t.DestinationCity,
		&t.ScheduledAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}
	return t, nil
}
