package window

import "errors"

// ErrLengthMismatch is returned when an image does not hold rows*cols values.
var ErrLengthMismatch = errors.New("window: image length mismatch")
