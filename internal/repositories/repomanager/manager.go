// Package repomanager vends dialect-specific repository implementations and
// applies the embedded schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/accountseed/internal/common"
	"github.com/dmitrijs2005/accountseed/internal/dbx"
	"github.com/dmitrijs2005/accountseed/internal/logging"
	"github.com/dmitrijs2005/accountseed/internal/repositories/users"
	"github.com/pressly/goose/v3"
)

// RepositoryManager hides the SQL dialect: it hands out repositories bound to
// a handle and owns the schema migrations for its store.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

// New returns the manager for a database/sql driver name.
func New(driver string, logger logging.Logger) (RepositoryManager, error) {
	switch driver {
	case dbx.DriverSQLite:
		return &SQLiteRepositoryManager{logger: logger}, nil
	case dbx.DriverPostgres:
		return &PostgresRepositoryManager{logger: logger}, nil
	}
	return nil, fmt.Errorf("%q: %w", driver, common.ErrorUnsupportedDriver)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// gooseLogger routes goose output into the structured logger so that stdout
// stays reserved for seeding confirmations.
type gooseLogger struct {
	l logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Info(context.Background(), fmt.Sprintf(format, v...), "component", "goose")
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	panic(fmt.Sprintf(format, v...))
}
