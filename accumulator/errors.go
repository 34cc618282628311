package accumulator

import "errors"

var (
	// ErrValidation is returned when an argument has the wrong shape: a nil
	// hash, a depth, arity or width outside its range, or an empty batch.
	ErrValidation = errors.New("accumulator: invalid argument")
	// ErrCapacity is returned when a bounded structure can not accept another
	// item, or can not produce a proof because it holds nothing.
	ErrCapacity = errors.New("accumulator: capacity")
	// ErrNotFound is returned when an index is outside [0, size).
	ErrNotFound = errors.New("accumulator: index not found")
)
