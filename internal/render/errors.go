package render

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a request that was rejected before rendering.
var ErrInvalidInput = errors.New("invalid input")

// RenderError wraps a failure inside a serialization or drawing library.
type RenderError struct {
	Format Format
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Format, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
