// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jerichotransport/freightdesk/internal/platform/database/schema"
	"github.com/jerichotransport/freightdesk/internal/platform/dberr"
)

// DB is the subset of [pgxpool.Pool] the repository needs. It is satisfied by
// both the production pool and pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	db DB
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(db DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

/*
Create persists a new user record into the users table.

Description: Inserts the account and hydrates the generated serial ID and
created_at timestamp back onto the entity.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicate email, or database errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s`,
		schema.RefUser.Table,
		schema.RefUser.Email, schema.RefUser.PasswordHash, schema.RefUser.Name, schema.RefUser.Role,
		schema.RefUser.ID, schema.RefUser.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return dberr.Wrap(err, "user_create")
	}

	return nil
}

/*
FindByEmail retrieves a user record by their unique email address.

Parameters:
  - context: context.Context
  - email: string (expected lowercased by the caller)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.RefUser.ID, schema.RefUser.Email, schema.RefUser.PasswordHash,
		schema.RefUser.Name, schema.RefUser.Role, schema.RefUser.CreatedAt,
		schema.RefUser.Table,
		schema.RefUser.Email,
	)

	user := &User{}
	err := repository.db.QueryRow(context, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "user_find_by_email")
	}

	return user, nil
}

/*
FindByID retrieves a user record by its primary key.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id int) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.RefUser.ID, schema.RefUser.Email, schema.RefUser.PasswordHash,
		schema.RefUser.Name, schema.RefUser.Role, schema.RefUser.CreatedAt,
		schema.RefUser.Table,
		schema.RefUser.ID,
	)

	user := &User{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "user_find_by_id")
	}

	return user, nil
}

/*
UpdatePassword replaces the stored password hash for the given account.

Parameters:
  - context: context.Context
  - id: int
  - passwordHash: string

Returns:
  - error: apperr.NotFound when the account vanished, or database errors
*/
func (repository *PostgresUserRepository) UpdatePassword(context context.Context, id int, passwordHash string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1 WHERE %s = $2`,
		schema.RefUser.Table, schema.RefUser.PasswordHash, schema.RefUser.ID,
	)

	commandTag, err := repository.db.Exec(context, query, passwordHash, id)
	if err != nil {
		return dberr.Wrap(err, "user_update_password")
	}

	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
