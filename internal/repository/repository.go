package repository

import "errors"

// ErrAlreadyExists is returned when an insert collides with an existing
// document id. For date-keyed nudges and badge awards this is the expected
// idempotent path, not a failure.
var ErrAlreadyExists = errors.New("document already exists")
