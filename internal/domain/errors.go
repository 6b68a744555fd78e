package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule (missing
// required field, title too long, end date not after start date, a booking
// field picked while it is still disabled).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ValidationPrefix is what ErrValidation contributes to a wrapped message.
const ValidationPrefix = "validation error: "
