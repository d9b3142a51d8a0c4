package nn

import "errors"

// ErrMissingArgument indicates that a required input reference is
// absent (nil input vector, nil activation, nil weight matrix). Shape
// and dimension violations reuse the kernel's sentinels
// (matrix.ErrShapeMismatch, matrix.ErrInvalidDimension) so callers
// handle one taxonomy.
var ErrMissingArgument = errors.New("nn: required argument is missing")
