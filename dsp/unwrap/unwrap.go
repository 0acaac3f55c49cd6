package unwrap

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-holo/dsp/core"
	"github.com/cwbudde/algo-holo/dsp/spectrum"
)

// Errors returned by unwrapping functions.
var (
	ErrEmptyInput     = errors.New("unwrap: empty input")
	ErrLengthMismatch = errors.New("unwrap: phase length does not match rows*cols")
)

// Method selects the unwrapping algorithm.
type Method int

const (
	MethodQualityGuided Method = iota
	MethodPathFollowing
)

func (m Method) String() string {
	switch m {
	case MethodQualityGuided:
		return "quality-guided"
	case MethodPathFollowing:
		return "path-following"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name as printed by [Method.String].
func ParseMethod(name string) (Method, error) {
	switch name {
	case "quality-guided", "quality", "":
		return MethodQualityGuided, nil
	case "path-following", "path":
		return MethodPathFollowing, nil
	default:
		return 0, fmt.Errorf("unwrap: unknown method %q", name)
	}
}

// Option configures Unwrap2D.
type Option func(*config)

type config struct {
	method Method
}

func defaultConfig() config {
	return config{method: MethodQualityGuided}
}

// WithMethod selects the unwrapping algorithm. Unknown methods are ignored.
func WithMethod(m Method) Option {
	return func(cfg *config) {
		if m == MethodQualityGuided || m == MethodPathFollowing {
			cfg.method = m
		}
	}
}

// Unwrap2D unwraps a row-major rows x cols phase map and returns a new slice.
// The input need not be wrapped; it is wrapped into (-pi, pi] first.
func Unwrap2D(phase []float64, rows, cols int, opts ...Option) ([]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("unwrap: dimensions must be > 0: %dx%d", rows, cols)
	}
	if len(phase) == 0 {
		return nil, ErrEmptyInput
	}
	if len(phase) != rows*cols {
		return nil, fmt.Errorf("%w: %d != %d*%d", ErrLengthMismatch, len(phase), rows, cols)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	wrapped := make([]float64, len(phase))
	copy(wrapped, phase)
	core.WrapPhaseSlice(wrapped)

	switch cfg.method {
	case MethodPathFollowing:
		return pathFollowing(wrapped, rows, cols), nil
	default:
		return qualityGuided(wrapped, rows, cols), nil
	}
}

func pathFollowing(wrapped []float64, rows, cols int) []float64 {
	column := make([]float64, rows)
	for r := range column {
		column[r] = wrapped[r*cols]
	}
	column = spectrum.UnwrapPhase(column)

	out := make([]float64, len(wrapped))
	for r := 0; r < rows; r++ {
		row := spectrum.UnwrapPhase(wrapped[r*cols : (r+1)*cols])
		shift := column[r] - row[0]
		for c, v := range row {
			out[r*cols+c] = v + shift
		}
	}
	return out
}

type edge struct {
	a, b        int
	reliability float64
}

func qualityGuided(wrapped []float64, rows, cols int) []float64 {
	out := make([]float64, len(wrapped))
	copy(out, wrapped)
	if len(out) == 1 {
		return out
	}

	rel := reliability(wrapped, rows, cols)
	edges := make([]edge, 0, 2*len(wrapped))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if c+1 < cols {
				edges = append(edges, edge{a: i, b: i + 1, reliability: rel[i] + rel[i+1]})
			}
			if r+1 < rows {
				edges = append(edges, edge{a: i, b: i + cols, reliability: rel[i] + rel[i+cols]})
			}
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].reliability > edges[j].reliability
	})

	// Each pixel starts in its own group; members lists let a merge shift the
	// smaller group by a whole number of cycles.
	group := make([]int, len(out))
	members := make([][]int, len(out))
	for i := range group {
		group[i] = i
		members[i] = []int{i}
	}

	for _, e := range edges {
		ga, gb := group[e.a], group[e.b]
		if ga == gb {
			continue
		}
		k := math.Round((out[e.a] - out[e.b]) / core.TwoPi)
		if len(members[ga]) < len(members[gb]) {
			ga, gb = gb, ga
			k = -k
		}
		shift := k * core.TwoPi
		for _, p := range members[gb] {
			out[p] += shift
			group[p] = ga
		}
		members[ga] = append(members[ga], members[gb]...)
		members[gb] = nil
	}

	anchor := out[0] - wrapped[0]
	if anchor != 0 {
		for i := range out {
			out[i] -= anchor
		}
	}
	return out
}

// reliability scores each pixel by the inverse of its wrapped second
// differences. Terms that need a neighbour outside the grid are omitted.
func reliability(w []float64, rows, cols int) []float64 {
	second := func(prev, cur, next float64) float64 {
		return core.WrapPhase(prev-cur) - core.WrapPhase(cur-next)
	}

	rel := make([]float64, len(w))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			var d2 float64
			if c > 0 && c+1 < cols {
				h := second(w[i-1], w[i], w[i+1])
				d2 += h * h
			}
			if r > 0 && r+1 < rows {
				v := second(w[i-cols], w[i], w[i+cols])
				d2 += v * v
			}
			if r > 0 && r+1 < rows && c > 0 && c+1 < cols {
				d1 := second(w[i-cols-1], w[i], w[i+cols+1])
				d2 += d1 * d1
				d3 := second(w[i-cols+1], w[i], w[i+cols-1])
				d2 += d3 * d3
			}
			rel[i] = 1 / (1 + math.Sqrt(d2))
		}
	}
	return rel
}
