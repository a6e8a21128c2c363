// Package common defines sentinel errors shared across the seeder layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Seed data errors.
	ErrorIncorrectSeed = errors.New("incorrect seed record")

	// Configuration / wiring errors.
	ErrorUnsupportedDriver = errors.New("unsupported database driver")
	ErrorInvalidConfig     = errors.New("invalid config")
)
