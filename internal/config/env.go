package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/dmitrijs2005/accountseed/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDatabaseDriver = "SEEDER_DB_DRIVER"
	EnvDatabaseDSN    = "SEEDER_DATABASE_DSN"
	EnvSeedFile       = "SEEDER_SEED_FILE"
	EnvBcryptCost     = "SEEDER_BCRYPT_COST"
	EnvOnFailure      = "SEEDER_ON_FAILURE"
	EnvMigrate        = "SEEDER_MIGRATE"
	EnvLogLevel       = "SEEDER_LOG_LEVEL"
)

// parseEnv loads the dotenv file (if it exists) without overriding variables
// already set, then overlays every SEEDER_* variable that is present.
// A malformed dotenv file or a non-numeric/non-boolean value panics.
func parseEnv(config *Config) {
	if err := godotenv.Load(flagx.EnvFileFlags()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(EnvDatabaseDriver); ok {
		config.DatabaseDriver = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvSeedFile); ok {
		config.SeedFile = v
	}
	if v, ok := os.LookupEnv(EnvBcryptCost); ok {
		cost, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.BcryptCost = cost
	}
	if v, ok := os.LookupEnv(EnvOnFailure); ok {
		config.OnFailure = v
	}
	if v, ok := os.LookupEnv(EnvMigrate); ok {
		migrate, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		config.Migrate = migrate
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		config.LogLevel = v
	}
}
