package config

import (
	"fmt"

	"github.com/dmitrijs2005/accountseed/internal/common"
	"github.com/dmitrijs2005/accountseed/internal/dbx"
	"github.com/dmitrijs2005/accountseed/internal/logging"
	"golang.org/x/crypto/bcrypt"
)

// Accepted OnFailure values.
const (
	OnFailureAbort    = "abort"
	OnFailureContinue = "continue"
)

// Config holds runtime settings for the seeder.
//
// Fields:
//   - DatabaseDriver: database/sql driver name ("sqlite" or "pgx").
//   - DatabaseDSN: connection string for the driver.
//   - SeedFile: JSON seed list; empty means the built-in accounts.
//   - BcryptCost: password hashing cost; 0 means bcrypt.DefaultCost.
//   - OnFailure: "abort" stops at the first failed record, "continue" goes on.
//   - Migrate: create the users table from the embedded migrations first.
//   - LogLevel: minimum level written to stderr.
type Config struct {
	DatabaseDriver string
	DatabaseDSN    string
	SeedFile       string
	BcryptCost     int
	OnFailure      string
	Migrate        bool
	LogLevel       string
}

// LoadDefaults mirrors the classic setup: a local SQLite file named database.db.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = dbx.DriverSQLite
	c.DatabaseDSN = "database.db"
	c.SeedFile = ""
	c.BcryptCost = 0
	c.OnFailure = OnFailureAbort
	c.Migrate = false
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the JSON file, the
// environment and finally command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports the first setting the seeder cannot work with.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case dbx.DriverSQLite, dbx.DriverPostgres:
	default:
		return fmt.Errorf("%w: driver %q", common.ErrorInvalidConfig, c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("%w: empty database DSN", common.ErrorInvalidConfig)
	}
	if c.BcryptCost != 0 && (c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("%w: bcrypt cost %d", common.ErrorInvalidConfig, c.BcryptCost)
	}
	switch c.OnFailure {
	case OnFailureAbort, OnFailureContinue:
	default:
		return fmt.Errorf("%w: failure policy %q", common.ErrorInvalidConfig, c.OnFailure)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorInvalidConfig, err)
	}
	return nil
}
