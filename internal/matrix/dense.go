package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
//
// The shape is fixed at construction; element values are mutable through
// Set. The backing buffer always holds exactly rows*cols elements and is
// never shared: every accessor that exports matrix data returns an
// independent copy.
//
// Example:
//
//	m, _ := matrix.New(3, 2)
//	_ = m.Set(0, 1, 4.5)
//	v, _ := m.MulVec([]float64{1, 2})
type Dense struct {
	rows, cols int
	data       []float64 // flat backing storage, len == rows*cols
}

// Rows returns the number of rows.
func (m *Dense) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Dense) Cols() int {
	return m.cols
}

// offset computes the flat index for (r, c), validating bounds.
func (m *Dense) offset(op string, r, c int) (int, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, fmt.Errorf("matrix: %s(%d,%d) outside %dx%d: %w", op, r, c, m.rows, m.cols, ErrIndexOutOfBounds)
	}
	return r*m.cols + c, nil
}

// At returns the element at (r, c).
func (m *Dense) At(r, c int) (float64, error) {
	idx, err := m.offset("At", r, c)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v to the element at (r, c).
func (m *Dense) Set(r, c int, v float64) error {
	idx, err := m.offset("Set", r, c)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Row returns a copy of row r.
func (m *Dense) Row(r int) ([]float64, error) {
	if r < 0 || r >= m.rows {
		return nil, fmt.Errorf("matrix: Row(%d) outside %d rows: %w", r, m.rows, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.cols)
	copy(out, m.data[r*m.cols:(r+1)*m.cols])
	return out, nil
}

// Col returns a copy of column c.
func (m *Dense) Col(c int) ([]float64, error) {
	if c < 0 || c >= m.cols {
		return nil, fmt.Errorf("matrix: Col(%d) outside %d cols: %w", c, m.cols, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.data[r*m.cols+c]
	}
	return out, nil
}

// RawData returns a copy of the flat row-major buffer.
func (m *Dense) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// ToSlices returns a copy of the matrix as a slice of row slices.
func (m *Dense) ToSlices() [][]float64 {
	out := make([][]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		row := make([]float64, m.cols)
		copy(row, m.data[r*m.cols:(r+1)*m.cols])
		out[r] = row
	}
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense %dx%d\n", m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		b.WriteString("[")
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[r*m.cols+c])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
