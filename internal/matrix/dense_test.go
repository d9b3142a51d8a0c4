package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtSetBounds(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	cases := []struct{ r, c int }{
		{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {2, 3},
	}
	for _, tc := range cases {
		_, err := m.At(tc.r, tc.c)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds, "At(%d,%d)", tc.r, tc.c)

		err = m.Set(tc.r, tc.c, 1)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds, "Set(%d,%d)", tc.r, tc.c)
	}
}

func TestRowColExtraction(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, col)

	// Returned slices are independent copies.
	row[0] = 99
	col[0] = 99
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
	v, err = m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = m.Col(3)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestExportsCopy(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	flat := m.RawData()
	flat[0] = 99
	rows := m.ToSlices()
	rows[1][1] = 99

	assert.Equal(t, []float64{1, 2, 3, 4}, m.RawData())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToSlices())
}

func TestCloneIndependent(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 99))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, m.Rows(), c.Rows())
	assert.Equal(t, m.Cols(), c.Cols())
}

func TestString(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2.5}})
	require.NoError(t, err)

	s := m.String()
	assert.Contains(t, s, "1x2")
	assert.Contains(t, s, "[1, 2.5]")
}
