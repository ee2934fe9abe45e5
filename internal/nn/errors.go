package nn

import "errors"

// Common errors.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrUnknownActivation = errors.New("unknown activation function")
	ErrInvalidShape      = errors.New("invalid network shape")
	ErrLearningRate      = errors.New("learning rate must be positive and finite")
)
