package models

import "github.com/cockroachdb/errors"

// ErrInvalidInput is returned for malformed applications: a missing field, a
// non-numeric value, an out-of-range number or an unknown enum value.
// Handlers render it with http status code 400.
var ErrInvalidInput = errors.New("invalid input")
