// Package accounts provides the seed records inserted by the seeder: the
// built-in defaults and an optional JSON file that replaces them.
package accounts

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/accountseed/internal/common"
	"github.com/dmitrijs2005/accountseed/internal/models"
)

// Defaults returns the built-in seed records in insertion order.
func Defaults() []models.Account {
	return []models.Account{
		{Identifier: "C00000001", DisplayName: "ramesh", Role: "executive", Secret: "Ramesh@001"},
		{Identifier: "C00000002", DisplayName: "suresh", Role: "cashier", Secret: "Suresh@002"},
		{Identifier: "C00000003", DisplayName: "mahesh", Role: "teller", Secret: "Mahesh@003"},
	}
}

// Load returns the defaults when path is empty and the file contents otherwise.
func Load(path string) ([]models.Account, error) {
	if path == "" {
		return Defaults(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a JSON array of seed records:
//
//	[
//	  {"id": "C00000001", "name": "ramesh", "role": "executive", "password": "Ramesh@001"}
//	]
//
// Roles are free-form. Unknown keys are rejected, and of the known ones only
// the presence of id and password is checked.
func LoadFile(path string) ([]models.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var list []models.Account
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %v: %w", path, err, common.ErrorIncorrectSeed)
	}

	for i, a := range list {
		if strings.TrimSpace(a.Identifier) == "" {
			return nil, fmt.Errorf("record %d: missing id: %w", i, common.ErrorIncorrectSeed)
		}
		if a.Secret == "" {
			return nil, fmt.Errorf("record %d (%s): missing password: %w", i, a.Identifier, common.ErrorIncorrectSeed)
		}
	}

	return list, nil
}
