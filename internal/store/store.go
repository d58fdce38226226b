// Package store is the query/command layer over the venue, artist and show
// tables. Reads return plain model records; every mutation runs inside its
// own transaction and reports zero-rows-affected as ErrNotFound instead of
// silently succeeding.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
