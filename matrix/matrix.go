// Copyright 2025 The feedfwd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for the feedfwd dense numeric
// kernel: a row-major float64 matrix with vector multiply, matrix
// multiply, transpose, elementwise arithmetic, and factory
// constructors.
//
// Every exported operation copies across the ownership boundary; no
// returned slice or matrix aliases internal storage.
//
// Example:
//
//	w, _ := matrix.FromRows([][]float64{{0.5, 0.3}, {0.2, 0.8}})
//	out, _ := w.MulVec([]float64{2.0, 1.5})
package matrix

import (
	"math/rand"

	"github.com/feedfwd-ml/feedfwd/internal/matrix"
)

// Dense is a row-major matrix of float64 values with an exclusively
// owned backing buffer.
type Dense = matrix.Dense

// Sentinel errors surfaced by kernel operations.
var (
	ErrInvalidDimension = matrix.ErrInvalidDimension
	ErrShapeMismatch    = matrix.ErrShapeMismatch
	ErrIndexOutOfBounds = matrix.ErrIndexOutOfBounds
)

// New creates a rows x cols matrix initialized to zeros.
func New(rows, cols int) (*Dense, error) {
	return matrix.New(rows, cols)
}

// FromFlat creates a rows x cols matrix by copying a flat row-major
// buffer.
func FromFlat(data []float64, rows, cols int) (*Dense, error) {
	return matrix.FromFlat(data, rows, cols)
}

// FromRows creates a matrix by copying a slice of equal-length rows.
func FromRows(rows [][]float64) (*Dense, error) {
	return matrix.FromRows(rows)
}

// Identity creates the n x n identity matrix.
func Identity(n int) (*Dense, error) {
	return matrix.Identity(n)
}

// Full creates a rows x cols matrix with every element set to v.
func Full(rows, cols int, v float64) (*Dense, error) {
	return matrix.Full(rows, cols, v)
}

// Glorot creates a rows x cols matrix of Gaussian samples scaled by
// sqrt(1/cols). A nil rng yields non-deterministic output; an explicit
// seeded source yields bit-identical matrices across runs.
//
// Example:
//
//	w, err := matrix.Glorot(128, 784, rand.New(rand.NewSource(42)))
func Glorot(rows, cols int, rng *rand.Rand) (*Dense, error) {
	return matrix.Glorot(rows, cols, rng)
}

// AddVec returns the elementwise sum of two equal-length vectors
// through the chunked kernel.
func AddVec(a, b []float64) ([]float64, error) {
	return matrix.AddVec(a, b)
}

// Lanes reports the hardware vector width used by the chunked kernels,
// in float64 elements per chunk.
func Lanes() int {
	return matrix.Lanes()
}
