package generate

import "errors"

var (
	// ErrInvalidConfig indicates a generation parameter is out of range.
	ErrInvalidConfig = errors.New("generate: invalid configuration")
	// ErrNoFloor indicates the grid holds no floor cell to start the
	// connectivity repair from. Retrying with another seed or a lower wall
	// chance usually succeeds.
	ErrNoFloor = errors.New("generate: no reachable region")
)
