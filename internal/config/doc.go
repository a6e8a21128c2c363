// Package config loads runtime configuration for the account seeder.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Environment variables, after loading an optional dotenv file chosen
//     with -e or -env (default ".env"; see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Supported flags
//
//	-D string   database driver: sqlite or pgx
//	-d string   database DSN
//	-f string   JSON seed file; built-in accounts when empty
//	-b int      bcrypt cost; 0 uses the library default
//	-o string   failure policy: abort or continue
//	-m          apply embedded schema migrations before seeding
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "database.db",
//	  "seed_file": "",
//	  "bcrypt_cost": 0,
//	  "on_failure": "abort",
//	  "migrate": false,
//	  "log_level": "info"
//	}
//
// # Environment
//
//	SEEDER_DB_DRIVER, SEEDER_DATABASE_DSN, SEEDER_SEED_FILE, SEEDER_BCRYPT_COST,
//	SEEDER_ON_FAILURE, SEEDER_MIGRATE, SEEDER_LOG_LEVEL
package config
