package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/sunnytrips/internal/domain"
)

// TourRepo defines the persistence operations for Tours.
type TourRepo interface {
	// Create inserts a new tour for tour.UserID and returns the persisted record.
	// Returns domain.ErrOwnerNotFound if the owning user does not exist.
	Create(ctx context.Context, tour domain.Tour) (domain.Tour, error)

	// GetByID retrieves a single tour by primary key.
	// Returns domain.ErrNotFound if no tour with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Tour, error)

	// List returns all tours ordered by scheduled date-time.
	List(ctx context.Context) ([]domain.Tour, error)

	// ListByUserID returns the tours owned by userID ordered by scheduled date-time.
	ListByUserID(ctx context.Context, userID int64) ([]domain.Tour, error)

	// Update overwrites the location and schedule of an existing tour.
	// Returns domain.ErrNotFound if no tour with that ID exists.
	Update(ctx context.Context, tour domain.Tour) (domain.Tour, error)

	// Delete removes a tour by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgTourRepo is the Postgres implementation of TourRepo.
type pgTourRepo struct {
	db    db
	newID func() int64
}

// NewTourRepo constructs a TourRepo backed by the provided db connection.
func NewTourRepo(db db, opts ...Option) TourRepo {
	o := buildOptions(opts)
	return &pgTourRepo{db: db, newID: o.newID}
}

const tourColumns = `id, usuario_id, local_especifico, data_hora, created_at, updated_at`

func (r *pgTourRepo) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	const q = `
		INSERT INTO passeios (id, usuario_id, local_especifico, data_hora)
		VALUES (@id, @usuario_id, @local_especifico, @data_hora)
		ON CONFLICT (id) DO NOTHING
		RETURNING ` + tourColumns

	result, err := insertWithID(tour.ID, r.newID, func(id int64) (domain.Tour, error) {
		args := pgx.NamedArgs{
			"id":               id,
			"usuario_id":       tour.UserID,
			"local_especifico": tour.Location,
			"data_hora":        tour.ScheduledAt,
		}
		return scanTour(r.db.QueryRow(ctx, q, args))
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Tour{}, fmt.Errorf("repo.TourRepo.Create: %w: user %d", domain.ErrOwnerNotFound, tour.UserID)
		}
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTourRepo) GetByID(ctx context.Context, id int64) (domain.Tour, error) {
	const q = `SELECT ` + tourColumns + ` FROM passeios WHERE id = @id`

	result, err := scanTour(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTourRepo) List(ctx context.Context) ([]domain.Tour, error) {
	const q = `SELECT ` + tourColumns + ` FROM passeios ORDER BY data_hora, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.List: %w", err)
	}
	tours, err := collectTours(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.List: %w", err)
	}
	return tours, nil
}

func (r *pgTourRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Tour, error) {
	const q = `SELECT ` + tourColumns + ` FROM passeios WHERE usuario_id = @usuario_id ORDER BY data_hora, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"usuario_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.ListByUserID: %w", err)
	}
	tours, err := collectTours(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.ListByUserID: %w", err)
	}
	return tours, nil
}

func (r *pgTourRepo) Update(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	const q = `
		UPDATE passeios
		SET local_especifico = @local_especifico,
		    data_hora        = @data_hora,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + tourColumns

	args := pgx.NamedArgs{
		"id":               tour.ID,
		"local_especifico": tour.Location,
		"data_hora":        tour.ScheduledAt,
	}

	result, err := scanTour(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTourRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM passeios WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TourRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TourRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// collectTours drains rows into a slice and closes them.
func collectTours(rows pgx.Rows) ([]domain.Tour, error) {
	defer rows.Close()

	var tours []domain.Tour
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tours = append(tours, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return tours, nil
}

// scanTour maps a single database row into a domain.Tour.
func scanTour(s scanner) (domain.Tour, error) {
	var t domain.Tour
	err := s.Scan(&t.ID, &t.UserID, &t.Location, &t.ScheduledAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tour{}, domain.ErrNotFound
		}
		return domain.Tour{}, err
	}
	return t, nil
}
