package matrix

import "errors"

// Sentinel errors for the kernel. All of them indicate programming
// errors detected synchronously at the point of use; none is
// recoverable internally.
var (
	// ErrInvalidDimension indicates a non-positive row or column count
	// at construction.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0")

	// ErrShapeMismatch indicates that operand dimensions disagree for
	// an operation (vector length vs. columns, rows vs. rows, ...).
	ErrShapeMismatch = errors.New("matrix: operand shapes disagree")

	// ErrIndexOutOfBounds indicates element access outside
	// [0,rows) x [0,cols).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")
)
