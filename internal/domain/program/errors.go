package program

import "errors"

// Sentinel kinds for program lookups.
var (
	ErrUnknownProgram = errors.New("unknown program")
)
