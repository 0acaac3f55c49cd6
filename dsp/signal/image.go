package signal

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-holo/dsp/core"
)

const defaultUnits = "px"

// Image is a real-valued image signal with an optional pixel calibration.
type Image struct {
	shape    core.Shape
	data     []float64
	sampling float64
	units    string
}

// NewImage copies data into a new image with the given shape. Without dims
// the image is a line signal of len(data) samples.
func NewImage(data []float64, dims ...int) (*Image, error) {
	shape, err := resolveShape(len(data), dims)
	if err != nil {
		return nil, err
	}
	img := &Image{
		shape:    shape,
		data:     make([]float64, len(data)),
		sampling: 1,
		units:    defaultUnits,
	}
	copy(img.data, data)
	return img, nil
}

// Shape returns a copy of the image dimensions.
func (img *Image) Shape() core.Shape { return img.shape.Clone() }

// Len returns the number of samples.
func (img *Image) Len() int { return len(img.data) }

// Data returns a copy of the samples.
func (img *Image) Data() []float64 {
	out := make([]float64, len(img.data))
	copy(out, img.data)
	return out
}

// At returns the pixel at row, col of the first image in the stack.
func (img *Image) At(row, col int) float64 {
	return img.data[row*img.shape.Cols()+col]
}

// Sampling returns the pixel size and its unit.
func (img *Image) Sampling() (float64, string) { return img.sampling, img.units }

// SetSampling sets the pixel calibration. Non-positive sizes are ignored.
func (img *Image) SetSampling(sampling float64, units string) {
	cfg := core.ImageConfig{Sampling: img.sampling, Units: img.units}
	core.WithSampling(sampling, units)(&cfg)
	img.sampling, img.units = cfg.Sampling, cfg.Units
}

// Add adds other to the image pixel by pixel.
func (img *Image) Add(other *Image) error {
	if !img.shape.Equal(other.shape) {
		return fmt.Errorf("%w: add %v to %v", ErrShapeMismatch, other.shape, img.shape)
	}
	vecmath.AddBlockInPlace(img.data, other.data)
	return nil
}

// Scale multiplies every pixel by gain.
func (img *Image) Scale(gain float64) {
	vecmath.ScaleBlockInPlace(img.data, gain)
}

// Mean returns the mean pixel value.
func (img *Image) Mean() float64 { return stat.Mean(img.data, nil) }

// Std returns the sample standard deviation of the pixel values.
func (img *Image) Std() float64 { return stat.StdDev(img.data, nil) }

// Min returns the smallest pixel value.
func (img *Image) Min() float64 { return floats.Min(img.data) }

// Max returns the largest pixel value.
func (img *Image) Max() float64 { return floats.Max(img.data) }
