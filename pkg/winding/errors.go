package winding

import "errors"

var (
	// ErrInvalidDomain indicates a domain whose start is not strictly below its end.
	ErrInvalidDomain = errors.New("winding: domain start must be less than end")
	// ErrInvalidRange indicates an empty or inverted frequency range.
	ErrInvalidRange = errors.New("winding: frequency range start must be less than end")
	// ErrInvalidCount indicates a non-positive sample or sweep step count.
	ErrInvalidCount = errors.New("winding: count must be positive")
	// ErrEmptyWinding is returned when the centroid of an empty winding is requested.
	ErrEmptyWinding = errors.New("winding: centroid of empty winding")
	// ErrInvalidOscillation indicates an oscillation with a zero or non-finite period.
	ErrInvalidOscillation = errors.New("winding: oscillation period must be finite and non-zero")
	// ErrOscillationOutOfRange indicates an oscillation that leaves the swept frequency range.
	ErrOscillationOutOfRange = errors.New("winding: oscillation leaves the swept frequency range")
	// ErrTrajectoryMismatch indicates a precomputed trajectory that was swept over a
	// different frequency range than the one it is drawn against.
	ErrTrajectoryMismatch = errors.New("winding: trajectory does not cover the configured sweep")
	// ErrNilInput indicates a missing signal or trajectory.
	ErrNilInput = errors.New("winding: signal and trajectory must not be nil")
)
