// Package dbx holds the small database/sql abstractions shared by the
// repositories and the seeder.
//
// Repositories take a DBTX rather than a concrete handle, so the same
// repository value works on a plain *sql.DB (reads, Verify) and on the
// *sql.Tx that WithTx opens for each seeded record. Open picks the driver
// and prepares the handle for it.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by repositories.
// *sql.DB, *sql.Tx and *sql.Conn all satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxBeginner starts transactions. *sql.DB satisfies it, and tests may pass a
// go-sqlmock handle to script Begin/Commit/Rollback.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// WithTx runs fn inside one transaction opened on db with opts.
//
// Outcome:
//   - fn returns nil: the transaction is committed and the Commit error,
//     if any, is returned.
//   - fn returns an error: the transaction is rolled back and fn's error is
//     returned unchanged, so callers can still match it with errors.Is.
//   - fn panics: the transaction is rolled back and the panic is rethrown.
//
// A BeginTx failure is returned as is and fn is not called. Rollback errors
// are dropped in favour of the error that caused them.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    return repos.Users(tx).Create(ctx, user)
//	})
func WithTx(ctx context.Context, db TxBeginner, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	done := false
	defer func() {
		// runs on error returns and while a panic unwinds
		if !done {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	done = true
	return tx.Commit()
}
