package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/sunnytrips/internal/domain"
)

// UserRepo defines the persistence operations for Users.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type UserRepo interface {
	// Create inserts a new user and returns the persisted record. A zero ID is
	// replaced by a generated one; collisions are retried.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// GetByID retrieves a single user by primary key.
	// Returns domain.ErrNotFound if no user with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.User, error)

	// GetByEmail retrieves the user registered with email. Email is unique by
	// convention only; the oldest matching row wins.
	// Returns domain.ErrNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// List returns all users ordered by id.
	List(ctx context.Context) ([]domain.User, error)

	// Update overwrites the basic fields of an existing user and returns the
	// updated record. Returns domain.ErrNotFound if no user with that ID exists.
	Update(ctx context.Context, user domain.User) (domain.User, error)

	// Delete removes a user by ID together with its trips and tours.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db    db
	newID func() int64
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUserRepo(db db, opts ...Option) UserRepo {
	o := buildOptions(opts)
	return &pgUserRepo{db: db, newID: o.newID}
}

const userColumns = `id, nome, email, senha, pais, estado, cidade, created_at, updated_at`

// Create inserts a new user row and returns the full persisted record.
func (r *pgUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		INSERT INTO usuarios (id, nome, email, senha, pais, estado, cidade)
		VALUES (@id, @nome, @email, @senha, @pais, @estado, @cidade)
		ON CONFLICT (id) DO NOTHING
		RETURNING ` + userColumns

	result, err := insertWithID(user.ID, r.newID, func(id int64) (domain.User, error) {
		args := pgx.NamedArgs{
			"id":     id,
			"nome":   user.Name,
			"email":  user.Email,
			"senha":  user.Password,
			"pais":   user.Country,
			"estado": user.State,
			"cidade": user.City,
		}
		return scanUser(r.db.QueryRow(ctx, q, args))
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a user by primary key.
func (r *pgUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM usuarios WHERE id = @id`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return result, nil
}

// GetByEmail retrieves a user by exact email match.
func (r *pgUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `
		SELECT ` + userColumns + `
		FROM usuarios
		WHERE email = @email
		ORDER BY created_at, id
		LIMIT 1`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", err)
	}
	return result, nil
}

// List returns all users ordered by id.
func (r *pgUserRepo) List(ctx context.Context) ([]domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM usuarios ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepo.List: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.UserRepo.List: scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.UserRepo.List: rows: %w", err)
	}
	return users, nil
}

// Update overwrites the basic fields of a user. The id is never written.
func (r *pgUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		UPDATE usuarios
		SET nome       = @nome,
		    email      = @email,
		    senha      = @senha,
		    pais       = @pais,
		    estado     = @estado,
		    cidade     = @cidade,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"id":     user.ID,
		"nome":   user.Name,
		"email":  user.Email,
		"senha":  user.Password,
		"pais":   user.Country,
		"estado": user.State,
		"cidade": user.City,
	}

	result, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a user by primary key. Owned trips and tours go with it
// through ON DELETE CASCADE, inside the same statement.
func (r *pgUserRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM usuarios WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanUser maps a single database row into a domain.User.
func scanUser(s scanner) (domain.User, error) {
	var u domain.User
	err := s.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Country, &u.State, &u.City, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}
