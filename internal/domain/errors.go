package domain

import "errors"

// Domain errors surfaced to the user by the shell and the CLI.
var (
	// ErrNoPrimaryDocument indicates a comparison was requested before any
	// file was loaded.
	ErrNoPrimaryDocument = errors.New("no primary document loaded")

	// ErrNotEnoughText indicates the text holds no words to chart.
	ErrNotEnoughText = errors.New("not enough text")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
