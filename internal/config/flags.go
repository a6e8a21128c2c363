package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/accountseed/internal/flagx"
)

// parseFlags overlays Config fields from the command line (see package doc
// for the flag list). Only the flags handled here are passed to the parser,
// so -c/-e are left to their own loaders. A parse error panics.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-D", "-d", "-f", "-b", "-o", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDriver, "D", config.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SeedFile, "f", config.SeedFile, "JSON seed file")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost (0 = library default)")
	fs.StringVar(&config.OnFailure, "o", config.OnFailure, "failure policy (abort or continue)")
	fs.BoolVar(&config.Migrate, "m", config.Migrate, "apply schema migrations before seeding")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
