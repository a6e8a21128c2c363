package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/accountseed/internal/flagx"
)

// JsonConfig is the on-disk shape of the configuration file. Pointer fields
// distinguish "absent" from zero values so a partial file only overrides
// what it names.
type JsonConfig struct {
	DatabaseDriver *string `json:"database_driver"`
	DatabaseDSN    *string `json:"database_dsn"`
	SeedFile       *string `json:"seed_file"`
	BcryptCost     *int    `json:"bcrypt_cost"`
	OnFailure      *string `json:"on_failure"`
	Migrate        *bool   `json:"migrate"`
	LogLevel       *string `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config. Without the
// flag nothing is loaded. An unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.DatabaseDriver, c.DatabaseDriver)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SeedFile, c.SeedFile)
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.OnFailure, c.OnFailure)
	setIf(&config.Migrate, c.Migrate)
	setIf(&config.LogLevel, c.LogLevel)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
