package codec

import "errors"

// Common errors.
var (
	ErrParse             = errors.New("value is not a number")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrMalformedCodec    = errors.New("malformed codec")
	ErrEmptyInput        = errors.New("no data points")
	ErrMissingAttribute  = errors.New("missing attribute")
	ErrInvalidAttributes = errors.New("invalid attributes")
)
