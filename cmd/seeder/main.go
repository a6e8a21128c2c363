package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/accountseed/internal/accounts"
	"github.com/dmitrijs2005/accountseed/internal/buildinfo"
	"github.com/dmitrijs2005/accountseed/internal/config"
	"github.com/dmitrijs2005/accountseed/internal/dbx"
	"github.com/dmitrijs2005/accountseed/internal/logging"
	"github.com/dmitrijs2005/accountseed/internal/passwords"
	"github.com/dmitrijs2005/accountseed/internal/repositories/repomanager"
	"github.com/dmitrijs2005/accountseed/internal/seeder"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr)
	stop()

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

}

// run wires the seeder from the process configuration. Confirmations go to
// stdout, everything else to stderr.
func run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	policy, err := seeder.ParsePolicy(cfg.OnFailure)
	if err != nil {
		return err
	}

	hasher, err := passwords.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return err
	}

	list, err := accounts.Load(cfg.SeedFile)
	if err != nil {
		return err
	}

	db, err := dbx.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	repos, err := repomanager.New(cfg.DatabaseDriver, logger)
	if err != nil {
		return err
	}

	if cfg.Migrate {
		if err := repos.RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	report, err := seeder.New(db, repos, hasher, logger, stdout, policy).Run(ctx, list)
	if err != nil {
		return runError(report, len(list), err)
	}
	return nil
}

func runError(report *seeder.Report, total int, err error) error {
	return fmt.Errorf("seeding run %s: %d of %d accounts inserted, %d failed, %d not attempted: %w",
		report.RunID, report.Inserted(), total, report.Failed(), report.NotAttempted(total), err)
}
