// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow handlers to distinguish
// failure scenarios without inspecting driver errors: ErrNotFound maps to
// HTTP 404, ErrDuplicate to a uniqueness violation, ErrConflict to 409
// and ErrForbidden to 403.
package repository

import "errors"

// ErrNotFound is returned when a fetch, update or delete matched no rows.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint, e.g. registering an email or username that already exists.
var ErrDuplicate = errors.New("duplicate entry")

// ErrConflict is returned when a delete cannot proceed because of
// dependent records, such as removing a tour that still has reviews.
var ErrConflict = errors.New("conflict")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")
