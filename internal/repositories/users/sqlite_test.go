package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/accountseed/internal/common"
	"github.com/dmitrijs2005/accountseed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		user_type TEXT NOT NULL,
		password TEXT NOT NULL
	)`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_CreateAndGet(t *testing.T) {
	repo := NewSQLiteRepository(newSQLiteDB(t))
	ctx := context.Background()

	u := &models.User{ID: "C00000001", Name: "ramesh", UserType: "executive", PasswordHash: "$2a$04$hash"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, "C00000001")
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestSQLiteRepository_Create_Duplicate(t *testing.T) {
	repo := NewSQLiteRepository(newSQLiteDB(t))
	ctx := context.Background()

	u := &models.User{ID: "C00000001", Name: "ramesh", UserType: "executive", PasswordHash: "h1"}
	require.NoError(t, repo.Create(ctx, u))

	err := repo.Create(ctx, &models.User{ID: "C00000001", Name: "other", UserType: "teller", PasswordHash: "h2"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := repo.GetByID(ctx, "C00000001")
	require.NoError(t, err)
	assert.Equal(t, "ramesh", got.Name, "first row must stay intact")
}

func TestSQLiteRepository_Create_MissingTable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	err = NewSQLiteRepository(db).Create(context.Background(), &models.User{ID: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Contains(t, err.Error(), "db error:")
}

func TestSQLiteRepository_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteRepository(newSQLiteDB(t))

	_, err := repo.GetByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLiteRepository_Create_UsesNamedArgs(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*name,\s*user_type,\s*password\)\s*VALUES\s*\(:id,\s*:name,\s*:type,\s*:password\)\s*$`
	mock.ExpectExec(q).
		WithArgs(
			sql.Named("id", "C00000002"),
			sql.Named("name", "suresh"),
			sql.Named("type", "cashier"),
			sql.Named("password", "hash"),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewSQLiteRepository(db).Create(context.Background(),
		&models.User{ID: "C00000002", Name: "suresh", UserType: "cashier", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_Create_DBError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("db down"))

	err = NewSQLiteRepository(db).Create(context.Background(), &models.User{ID: "x"})
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db down`, err.Error())
}
