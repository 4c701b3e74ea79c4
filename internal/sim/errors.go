package sim

import "errors"

var (
	// ErrUnknownBody indicates an ID or label that the context never issued.
	ErrUnknownBody = errors.New("sim: unknown body")

	// ErrInvalidTicks indicates a non-positive tick count.
	ErrInvalidTicks = errors.New("sim: tick count must be positive")
)
