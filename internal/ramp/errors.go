package ramp

import "errors"

// Sentinel errors for the two validation failure classes. All validation
// happens before any colour computation begins; a failed call returns no
// partial output.
var (
	// ErrInvalidColorFormat is returned when a base colour is not exactly
	// 6 hex digits (with or without a leading #).
	ErrInvalidColorFormat = errors.New("invalid colour format")

	// ErrInvalidArgument is returned for an out-of-range temperature, an
	// unsupported step count, or an unknown mode.
	ErrInvalidArgument = errors.New("invalid argument")
)
