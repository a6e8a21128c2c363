package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/accountseed/internal/common"
	"github.com/dmitrijs2005/accountseed/internal/dbx"
	"github.com/dmitrijs2005/accountseed/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository stores users through modernc.org/sqlite. Statements bind
// named parameters (:name) with sql.Named.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository binds the repository to db, which may be a transaction.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts user. A primary or unique key conflict maps to
// common.ErrorAlreadyExists; the driver error is kept in the message.
func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) error {
	query :=
		`INSERT INTO users (id, name, user_type, password)
		 VALUES (:id, :name, :type, :password)
		 `

	_, err := r.db.ExecContext(ctx, query,
		sql.Named("id", user.ID),
		sql.Named("name", user.Name),
		sql.Named("type", user.UserType),
		sql.Named("password", user.PasswordHash),
	)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return fmt.Errorf("user %s: %w: %v", user.ID, common.ErrorAlreadyExists, err)
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// GetByID returns common.ErrorNotFound when no row has the id.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, name, user_type, password FROM users
		 WHERE id = :id
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, sql.Named("id", id)).
		Scan(&user.ID, &user.Name, &user.UserType, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// isSQLiteUniqueViolation matches extended constraint codes and falls back to
// the message for drivers that only report the primary SQLITE_CONSTRAINT.
func isSQLiteUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(se.Error(), "UNIQUE")
	}
	return false
}
