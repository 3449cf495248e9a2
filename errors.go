package canvas

import "errors"

// Errors returned by the drawing surface. They signal programming errors in the calling sketch and are never recovered from internally; wrap-aware callers should test for them using errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrStackUnderflow  = errors.New("transform stack underflow")
)
