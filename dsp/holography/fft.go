package holography

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-holo/dsp/core"
)

// ErrLengthMismatch is returned when a grid does not hold rows*cols values.
var ErrLengthMismatch = errors.New("holography: grid length mismatch")

// FFT2 computes the forward 2-D DFT of a row-major rows x cols grid in place.
func FFT2(data []complex128, rows, cols int) error {
	g, err := newGrid2D(rows, cols)
	if err != nil {
		return err
	}
	return g.transform(data, false)
}

// IFFT2 computes the normalised inverse 2-D DFT of a row-major grid in place.
func IFFT2(data []complex128, rows, cols int) error {
	g, err := newGrid2D(rows, cols)
	if err != nil {
		return err
	}
	return g.transform(data, true)
}

// grid2D holds the line plans and scratch buffers for repeated 2-D
// transforms of one grid size.
type grid2D struct {
	rows, cols int
	rowPlan    *linePlan
	colPlan    *linePlan
	src, dst   []complex128
}

func newGrid2D(rows, cols int) (*grid2D, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("holography: grid dimensions must be > 0: %dx%d", rows, cols)
	}
	rowPlan, err := newLinePlan(cols)
	if err != nil {
		return nil, err
	}
	colPlan := rowPlan
	if rows != cols {
		if colPlan, err = newLinePlan(rows); err != nil {
			return nil, err
		}
	}
	return &grid2D{rows: rows, cols: cols, rowPlan: rowPlan, colPlan: colPlan}, nil
}

func (g *grid2D) transform(data []complex128, inverse bool) error {
	rows, cols := g.rows, g.cols
	if len(data) != rows*cols {
		return fmt.Errorf("%w: %d != %d*%d", ErrLengthMismatch, len(data), rows, cols)
	}
	g.src = core.EnsureComplexLen(g.src, max(rows, cols))
	g.dst = core.EnsureComplexLen(g.dst, max(rows, cols))
	src, dst := g.src, g.dst

	for r := 0; r < rows; r++ {
		line := data[r*cols : (r+1)*cols]
		copy(src, line)
		if err := g.rowPlan.run(line, src[:cols], inverse); err != nil {
			return err
		}
	}

	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			src[r] = data[r*cols+c]
		}
		if err := g.colPlan.run(dst[:rows], src[:rows], inverse); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			data[r*cols+c] = dst[r]
		}
	}
	return nil
}

// linePlan wraps a 1-D FFT plan. A length-1 transform is the identity and
// needs no plan.
type linePlan struct {
	plan *algofft.Plan[complex128]
}

func newLinePlan(n int) (*linePlan, error) {
	if n == 1 {
		return &linePlan{}, nil
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("holography: failed to create FFT plan of size %d: %w", n, err)
	}
	return &linePlan{plan: plan}, nil
}

func (p *linePlan) run(dst, src []complex128, inverse bool) error {
	if p.plan == nil {
		copy(dst, src)
		return nil
	}
	var err error
	if inverse {
		err = p.plan.Inverse(dst, src)
	} else {
		err = p.plan.Forward(dst, src)
	}
	if err != nil {
		if inverse {
			return fmt.Errorf("holography: inverse FFT failed: %w", err)
		}
		return fmt.Errorf("holography: forward FFT failed: %w", err)
	}
	return nil
}

// signedFreq maps FFT bin k of an n-point transform to its signed frequency
// in cycles per image, following the usual fftfreq convention.
func signedFreq(k, n int) int {
	if k >= (n+1)/2 {
		return k - n
	}
	return k
}

// binIndex is the inverse of signedFreq.
func binIndex(f, n int) int {
	return ((f % n) + n) % n
}
