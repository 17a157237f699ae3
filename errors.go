package main

import "errors"

// Core error taxonomy. Every error here is recoverable: operations are
// rejected and prior state is preserved, the process never aborts.
var (
	ErrValidation       = errors.New("validation failed")
	ErrEmptyQuiz        = errors.New("quiz has no questions")
	ErrInvalidSelection = errors.New("selection out of range")
	ErrNotInProgress    = errors.New("attempt is not in progress")
	ErrStorage          = errors.New("storage failure")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrNotFound         = errors.New("not found")
	ErrWrongPassword    = errors.New("incorrect password")
)
