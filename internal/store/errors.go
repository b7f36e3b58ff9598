package store

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("record not found")

// StorageError sürücü / bağlantı hatalarını sarar. Mesajı istemciye dönülmez.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
