package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every repository when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a unique key is already taken.
var ErrConflict = errors.New("record already exists")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}
