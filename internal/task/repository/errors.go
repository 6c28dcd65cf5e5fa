package repository

import "errors"

var (
	ErrNotFound      = errors.New("task not found")
	ErrAlreadyExists = errors.New("task already exists")
	ErrInvalidTask   = errors.New("invalid task")
)
