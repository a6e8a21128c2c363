// Package seeder inserts seed accounts into the users table, one transaction
// per record, hashing every password before it reaches storage.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/accountseed/internal/dbx"
	"github.com/dmitrijs2005/accountseed/internal/logging"
	"github.com/dmitrijs2005/accountseed/internal/models"
	"github.com/dmitrijs2005/accountseed/internal/passwords"
	"github.com/dmitrijs2005/accountseed/internal/repositories/users"
	"github.com/google/uuid"
)

// Store is the database handle the seeder works against. *sql.DB satisfies it.
type Store interface {
	dbx.TxBeginner
	dbx.DBTX
}

// Repositories binds repositories to a transaction or plain handle.
type Repositories interface {
	Users(db dbx.DBTX) users.Repository
}

// Seeder inserts accounts through the users repository, committing each
// record in its own transaction and confirming it on out.
type Seeder struct {
	store  Store
	repos  Repositories
	hasher passwords.Hasher
	logger logging.Logger
	out    io.Writer
	policy Policy
}

// New builds a Seeder. An empty policy means PolicyAbort.
func New(store Store, repos Repositories, hasher passwords.Hasher, logger logging.Logger, out io.Writer, policy Policy) *Seeder {
	if policy == "" {
		policy = PolicyAbort
	}
	return &Seeder{
		store:  store,
		repos:  repos,
		hasher: hasher,
		logger: logger,
		out:    out,
		policy: policy,
	}
}

// Run seeds accounts in order. Each record is hashed, inserted and committed
// on its own, then confirmed on the output writer with
//
//	Account for {name} ({role}) completed.
//
// The returned error joins every record failure; the report is always non-nil.
func (s *Seeder) Run(ctx context.Context, accounts []models.Account) (*Report, error) {
	report := &Report{RunID: uuid.NewString(), State: StateNotStarted}
	log := s.logger.With("run_id", report.RunID)

	report.State = StateRunning
	log.Info(ctx, "seeding started", "accounts", len(accounts), "policy", string(s.policy))

	var errs []error
	for _, a := range accounts {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("seeding interrupted before %s: %w", a.Identifier, err))
			break
		}

		res := Result{Identifier: a.Identifier, DisplayName: a.DisplayName, Role: a.Role}
		if res.Err = s.seedAccount(ctx, a); res.Err == nil {
			res.Committed = true
			log.Debug(ctx, "account committed", "id", a.Identifier, "role", a.Role)

			// the row stays committed; a lost confirmation still fails the record
			if _, err := fmt.Fprintf(s.out, "Account for %s (%s) completed.\n", a.DisplayName, a.Role); err != nil {
				res.Err = fmt.Errorf("account %s: write confirmation: %w", a.Identifier, err)
			}
		}
		report.Results = append(report.Results, res)

		if res.Err != nil {
			log.Error(ctx, "account failed", "id", a.Identifier, "committed", res.Committed, "error", res.Err)
			errs = append(errs, res.Err)
			if s.policy == PolicyAbort {
				break
			}
		}
	}

	if len(errs) > 0 {
		report.State = StateFailed
		log.Error(ctx, "seeding failed", "inserted", report.Inserted(), "failed", report.Failed())
		return report, errors.Join(errs...)
	}

	report.State = StateCompleted
	log.Info(ctx, "seeding completed", "inserted", report.Inserted())
	return report, nil
}

func (s *Seeder) seedAccount(ctx context.Context, a models.Account) error {
	hash, err := s.hasher.Hash(a.Secret)
	if err != nil {
		return fmt.Errorf("account %s: %w", a.Identifier, err)
	}

	err = dbx.WithTx(ctx, s.store, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repos.Users(tx).Create(ctx, a.User(hash))
	})
	if err != nil {
		return fmt.Errorf("account %s: %w", a.Identifier, err)
	}
	return nil
}

// Verify reports whether secret matches the stored hash of the account.
func (s *Seeder) Verify(ctx context.Context, identifier, secret string) (bool, error) {
	u, err := s.repos.Users(s.store).GetByID(ctx, identifier)
	if err != nil {
		return false, fmt.Errorf("account %s: %w", identifier, err)
	}
	return s.hasher.Verify(secret, u.PasswordHash), nil
}
