// Package matrix implements the dense numeric kernel for the feedfwd
// framework: a row-major float64 matrix with vector multiply, matrix
// multiply, transpose, elementwise arithmetic, and factory constructors.
//
// The kernel is built around two rules:
//
//   - Ownership: a Dense owns its backing buffer exclusively. Every
//     operation that exports matrix data returns an independent copy, so
//     no caller ever holds a reference that aliases internal storage.
//   - Chunked reductions: dot products and elementwise loops process
//     fixed hardware-width lanes with a scalar tail. The tail path must
//     agree with the lane path up to floating-point reassociation; the
//     package tests cross-check both against naive references.
//
// All shape and bounds violations surface as wrapped sentinel errors
// (ErrInvalidDimension, ErrShapeMismatch, ErrIndexOutOfBounds). No
// operation partially executes before failing.
package matrix
