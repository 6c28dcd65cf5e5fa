package repository

import "errors"

var (
	ErrDuplicate      = errors.New("settlement already recorded")
	ErrNotFound       = errors.New("settlement not found")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToDelete = errors.New("failed to delete record")
)
