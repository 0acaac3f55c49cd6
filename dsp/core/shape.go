package core

import "fmt"

// Shape holds row-major array dimensions. The last two axes are the image
// (signal) axes; any leading axes index a stack of images.
type Shape []int

// NewShape validates dims and returns them as a Shape.
func NewShape(dims ...int) (Shape, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("shape must have at least one dimension")
	}
	for i, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("shape dimension %d must be > 0: %d", i, d)
		}
	}
	s := make(Shape, len(dims))
	copy(s, dims)
	return s, nil
}

// NumElements returns the product of all dimensions, or 0 for an empty or
// invalid shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		if d <= 0 {
			return 0
		}
		n *= d
	}
	return n
}

// Equal reports whether s and o have identical dimensions.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Rows is the size of the second-to-last axis, or 1 for a line signal.
func (s Shape) Rows() int {
	if len(s) < 2 {
		return 1
	}
	return s[len(s)-2]
}

// Cols is the size of the last axis.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// FrameLen is the number of elements in one image.
func (s Shape) FrameLen() int {
	return s.Rows() * s.Cols()
}

// Frames is the number of images along the navigation axes.
func (s Shape) Frames() int {
	if len(s) <= 2 {
		if len(s) == 0 {
			return 0
		}
		return 1
	}
	return Shape(s[:len(s)-2]).NumElements()
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}
