package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountseed/internal/common"
	"github.com/dmitrijs2005/accountseed/internal/dbx"
	"github.com/dmitrijs2005/accountseed/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// PostgresRepository stores users through the pgx database/sql driver.
// Statements use pgx named arguments (@name), rewritten by pgx before they
// reach the server.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository binds the repository to db, which may be a transaction.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts user. A duplicate id maps to common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	query :=
		`INSERT INTO users (id, name, user_type, password)
		 VALUES (@id, @name, @type, @password)
		 `

	_, err := r.db.ExecContext(ctx, query, pgx.NamedArgs{
		"id":       user.ID,
		"name":     user.Name,
		"type":     user.UserType,
		"password": user.PasswordHash,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("user %s: %w: %v", user.ID, common.ErrorAlreadyExists, err)
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// GetByID returns common.ErrorNotFound when no row has the id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, name, user_type, password FROM users
		 WHERE id = @id
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, pgx.NamedArgs{"id": id}).
		Scan(&user.ID, &user.Name, &user.UserType, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
