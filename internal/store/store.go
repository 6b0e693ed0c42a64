// Package store is the ledger store: CRUD access to products, locations and
// movements plus the derived stock report. It is the only package that talks
// to the database; handlers receive a *Store rather than the raw connection.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned when a create collides on a primary key.
	ErrDuplicateKey = errors.New("duplicate key")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// DB exposes the underlying connection for health checks.
func (s *Store) DB() *gorm.DB { return s.db }

// translate maps driver errors onto the store's sentinel errors.
// sqlite reports "UNIQUE constraint failed", postgres "duplicate key".
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	lower := strings.ToLower(err.Error())
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(lower, "duplicate") || strings.Contains(lower, "unique constraint") {
		return ErrDuplicateKey
	}
	return err
}
