package repository

import "errors"

// Errors returned by inventory stores. Callers map them to domain errors.
var (
	ErrFailedToInsert = errors.New("failed to insert inventory")
	ErrNameTaken      = errors.New("inventory name already taken")
)
