package domain

import "errors"

var (
	// ErrNotFound covers a missing entity and an ownership mismatch
	// alike, so callers cannot tell "wrong id" from "wrong owner".
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks malformed input: blank required fields,
	// unknown enum tokens, bad pagination values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflict marks a duplicate project slug.
	ErrConflict = errors.New("conflict")
)
