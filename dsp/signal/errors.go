package signal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-holo/dsp/core"
)

// Errors returned by signal operations.
var (
	ErrShapeMismatch = errors.New("signal: shape mismatch")
	ErrEmptyInput    = errors.New("signal: empty input")
)

func resolveShape(n int, dims []int) (core.Shape, error) {
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if len(dims) == 0 {
		return core.Shape{n}, nil
	}
	shape, err := core.NewShape(dims...)
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	if shape.NumElements() != n {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShapeMismatch, n, shape)
	}
	return shape, nil
}

func checkLen(op string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s got %d values, want %d", ErrShapeMismatch, op, got, want)
	}
	return nil
}
