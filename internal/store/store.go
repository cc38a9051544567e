// Package store is the only place that talks to the database. Every read and
// write is scoped to an owner identifier here, never in handlers, so the
// ownership boundary can be audited in one package.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrMissingOwner is returned when a query is attempted without an owner
// identifier. Callers are expected to short-circuit before reaching the
// store; this guard exists so an unscoped read can never hit the database.
var ErrMissingOwner = errors.New("owner identifier is required")

type Store struct {
	db *gorm.DB
}

func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}
