package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-D", "pgx", "-d", "postgres://u:p@db:5432/bank", "-f", "seed.json",
			"-b", "12", "-o", "continue", "-l", "debug", "-m",
		}, expectPanic: false,
			expected: &Config{
				DatabaseDriver: "pgx",
				DatabaseDSN:    "postgres://u:p@db:5432/bank",
				SeedFile:       "seed.json",
				BcryptCost:     12,
				OnFailure:      "continue",
				Migrate:        true,
				LogLevel:       "debug",
			}},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-e", "x.env", "-d", "other.db"},
			expected: &Config{DatabaseDSN: "other.db"}},
		{name: "bad int", args: []string{"cmd", "-b", "many"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
