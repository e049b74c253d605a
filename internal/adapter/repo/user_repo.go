package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"jakob/internal/domain"
	"jakob/internal/infra"
	"jakob/internal/sqlinline"
)

const pgUniqueViolation = "23505"

// UserRepositoryPG implements domain.UserRepository backed by PostgreSQL.
type UserRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new UserRepositoryPG.
func NewUserRepository(sql infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{sql: sql}
}

// Create inserts a new active user and returns the generated identifier. A
// unique violation maps to domain.ErrConflict so a signup racing the
// duplicate pre-check still fails cleanly.
func (r *UserRepositoryPG) Create(ctx context.Context, username, telephone string) (int64, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertUser, username, telephone)
	var id int64
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, domain.ErrConflict
		}
		return 0, err
	}
	return id, nil
}

// ExistsByUsernameOrPhone reports whether a user already holds the normalized
// handle or phone number.
func (r *UserRepositoryPG) ExistsByUsernameOrPhone(ctx context.Context, username, telephone string) (bool, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QExistsUserByUsernameOrPhone, telephone, username)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// GetByID fetches a user by identifier.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByID, id))
}

// GetCreatorByID fetches a user by identifier, restricted to creator accounts.
func (r *UserRepositoryPG) GetCreatorByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectCreatorByID, id))
}

func (r *UserRepositoryPG) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Telephone, &u.Prenom, &u.Nom, &u.IsCreator, &u.Active, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

var _ domain.UserRepository = (*UserRepositoryPG)(nil)
