package domain

import "errors"

// ErrNotFound is returned when a referenced job, contact, interview round, or
// prep question does not exist. Repositories translate their driver-specific
// not-found errors into this sentinel so callers stay store-agnostic.
var ErrNotFound = errors.New("record not found")
