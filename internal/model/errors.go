package model

import "errors"

var (
	// ErrEmptySet indicates a dataset with an empty index set; no variables
	// are created in that case.
	ErrEmptySet = errors.New("model: empty index set")
	// ErrMissingParam indicates a dataset map without an entry for some
	// label combination.
	ErrMissingParam = errors.New("model: missing parameter")
	// ErrNegativeParam indicates a negative value about to enter a variable
	// bound or a right-hand side.
	ErrNegativeParam = errors.New("model: negative parameter")
	// ErrBadMode indicates a mode flag outside {integer, relaxed}.
	ErrBadMode = errors.New("model: unknown mode")
)
