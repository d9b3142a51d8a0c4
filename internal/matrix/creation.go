package matrix

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// New creates a rows x cols matrix initialized to zeros.
//
// Example:
//
//	m, err := matrix.New(3, 4)
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix: New(%d,%d): %w", rows, cols, ErrInvalidDimension)
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromFlat creates a rows x cols matrix from a flat row-major buffer.
// The buffer is copied; the caller keeps ownership of data.
func FromFlat(data []float64, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix: FromFlat(%d,%d): %w", rows, cols, ErrInvalidDimension)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("matrix: FromFlat: %d elements for %dx%d: %w", len(data), rows, cols, ErrShapeMismatch)
	}
	m := &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
	copy(m.data, data)
	return m, nil
}

// FromRows creates a matrix from a slice of equal-length row slices.
// The rows are copied; ragged input is rejected.
//
// Example:
//
//	m, err := matrix.FromRows([][]float64{{0.5, 0.3}, {0.2, 0.8}})
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matrix: FromRows: empty source: %w", ErrInvalidDimension)
	}
	cols := len(rows[0])
	m, err := New(len(rows), cols)
	if err != nil {
		return nil, fmt.Errorf("matrix: FromRows: %w", err)
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("matrix: FromRows: row %d has %d elements, want %d: %w", r, len(row), cols, ErrShapeMismatch)
		}
		copy(m.data[r*cols:(r+1)*cols], row)
	}
	return m, nil
}

// Identity creates the n x n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, fmt.Errorf("matrix: Identity(%d): %w", n, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Full creates a rows x cols matrix with every element set to v.
func Full(rows, cols int, v float64) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("matrix: Full: %w", err)
	}
	for i := range m.data {
		m.data[i] = v
	}
	return m, nil
}

// Glorot creates a rows x cols matrix with elements drawn from a
// zero-mean Gaussian scaled by sqrt(1/cols) (Glorot/Xavier fan-in
// scaling). Samples come from a Box-Muller transform over two
// independent uniform draws.
//
// The generator is an explicit, caller-owned source: passing
// rand.New(rand.NewSource(seed)) yields bit-identical matrices across
// runs. A nil rng falls back to a time-seeded private source, so the
// result is non-deterministic.
//
// Example:
//
//	w, err := matrix.Glorot(128, 784, rand.New(rand.NewSource(42)))
func Glorot(rows, cols int, rng *rand.Rand) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("matrix: Glorot: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // weight init, not security-critical
	}
	scale := math.Sqrt(1.0 / float64(cols))
	for i := 0; i < len(m.data); i += 2 {
		// Box-Muller: u1 must stay off zero for the log.
		u1 := rng.Float64()
		for u1 == 0 {
			u1 = rng.Float64()
		}
		u2 := rng.Float64()
		r := math.Sqrt(-2.0 * math.Log(u1))
		m.data[i] = r * math.Cos(2.0*math.Pi*u2) * scale
		if i+1 < len(m.data) {
			m.data[i+1] = r * math.Sin(2.0*math.Pi*u2) * scale
		}
	}
	return m, nil
}
