// Package database provides user and review persistence on MongoDB, plus
// static fallbacks used when the store is unreachable. Sentinel errors let
// handlers translate store failures into HTTP statuses in one place.
package database

import "errors"

// ErrNotFound is returned when no document matches the given filter.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned when an id is not a well-formed object id.
var ErrInvalidID = errors.New("invalid id")

// ErrUnavailable is returned by the mock stores for every mutation: writes
// have no fallback when the database is down.
var ErrUnavailable = errors.New("database not available")

// ErrEmailTaken is returned when creating a user whose email already exists.
var ErrEmailTaken = errors.New("email already registered")
