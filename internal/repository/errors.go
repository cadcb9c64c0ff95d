// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// services to distinguish between failure scenarios without inspecting
// driver error strings themselves.
package repository

import "errors"

// ErrEmailExists is returned when a user insert violates the unique
// email constraint.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound indicates that no user row matched the query.
var ErrUserNotFound = errors.New("user not found")

// ErrMovieNotFound indicates that a movie was not located in the DB.
var ErrMovieNotFound = errors.New("movie not found")

// ErrNoFields is returned when an update is attempted with an empty
// field set.
var ErrNoFields = errors.New("no fields to update")
