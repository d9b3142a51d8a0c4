package matrix

import "fmt"

// MulVec returns the matrix-vector product m x v as a new slice of
// length m.Rows(). Each output element is a chunked dot product of one
// matrix row against v (see dot for the lane/tail discipline).
func (m *Dense) MulVec(v []float64) ([]float64, error) {
	if len(v) != m.cols {
		return nil, fmt.Errorf("matrix: MulVec: vector length %d, want %d: %w", len(v), m.cols, ErrShapeMismatch)
	}
	out := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = dot(m.data[r*m.cols:(r+1)*m.cols], v)
	}
	return out, nil
}

// MatMul returns the matrix product m x other. The right operand is
// transposed first so every output element reduces two contiguous rows
// through the chunked dot kernel.
func (m *Dense) MatMul(other *Dense) (*Dense, error) {
	if other == nil || m.cols != other.rows {
		oc := 0
		if other != nil {
			oc = other.rows
		}
		return nil, fmt.Errorf("matrix: MatMul: %d cols vs %d rows: %w", m.cols, oc, ErrShapeMismatch)
	}
	bt := other.Transpose()
	out := &Dense{rows: m.rows, cols: other.cols, data: make([]float64, m.rows*other.cols)}
	for r := 0; r < m.rows; r++ {
		row := m.data[r*m.cols : (r+1)*m.cols]
		for c := 0; c < other.cols; c++ {
			out.data[r*out.cols+c] = dot(row, bt.data[c*bt.cols:(c+1)*bt.cols])
		}
	}
	return out, nil
}

// Transpose returns a new matrix with swapped dimensions. The operation
// moves elements without arithmetic, so (m.Transpose()).Transpose()
// equals m exactly.
func (m *Dense) Transpose() *Dense {
	out := &Dense{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.data[c*out.cols+r] = m.data[r*m.cols+c]
		}
	}
	return out
}

// Add returns the elementwise sum m + other as a new matrix.
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if err := m.sameShape("Add", other); err != nil {
		return nil, err
	}
	out := &Dense{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	addChunked(out.data, m.data, other.data)
	return out, nil
}

// Sub returns the elementwise difference m - other as a new matrix.
func (m *Dense) Sub(other *Dense) (*Dense, error) {
	if err := m.sameShape("Sub", other); err != nil {
		return nil, err
	}
	out := &Dense{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	subChunked(out.data, m.data, other.data)
	return out, nil
}

// MulElem returns the elementwise (Hadamard) product m * other as a new
// matrix.
func (m *Dense) MulElem(other *Dense) (*Dense, error) {
	if err := m.sameShape("MulElem", other); err != nil {
		return nil, err
	}
	out := &Dense{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	mulChunked(out.data, m.data, other.data)
	return out, nil
}

// Scale returns s * m as a new matrix.
func (m *Dense) Scale(s float64) *Dense {
	out := &Dense{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	scaleChunked(out.data, m.data, s)
	return out
}

// sameShape validates that other exists and matches m's dimensions.
func (m *Dense) sameShape(op string, other *Dense) error {
	if other == nil {
		return fmt.Errorf("matrix: %s: nil operand: %w", op, ErrShapeMismatch)
	}
	if m.rows != other.rows || m.cols != other.cols {
		return fmt.Errorf("matrix: %s: %dx%d vs %dx%d: %w", op, m.rows, m.cols, other.rows, other.cols, ErrShapeMismatch)
	}
	return nil
}

// AddVec returns the elementwise sum of two equal-length vectors using
// the chunked kernel. The layer's bias addition goes through here.
func AddVec(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("matrix: AddVec: lengths %d vs %d: %w", len(a), len(b), ErrShapeMismatch)
	}
	out := make([]float64, len(a))
	addChunked(out, a, b)
	return out, nil
}
