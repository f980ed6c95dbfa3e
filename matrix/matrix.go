// Package matrix implements the dense weight store of a counter-propagation network
package matrix

import "github.com/pkg/errors"

// ErrShape is returned when a vector or matrix does not have the expected dimensions.
var ErrShape = errors.New("shape mismatch")

// ErrIndex is returned when a row or column index lies outside the matrix.
var ErrIndex = errors.New("index out of range")

// Matrix is a dense rows × cols matrix of float64 stored row-major. Rows are input
// dimensions, columns are instar units. The dimensions are fixed at construction.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// New creates a zero filled rows × cols matrix
func New(rows, cols int) (m *Matrix, err error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrShape, "matrix dimensions must be positive, got %dx%d", rows, cols)
	}
	m = new(Matrix)
	m.rows = rows
	m.cols = cols
	m.data = make([]float64, rows*cols)
	return
}

// MustNew creates a zero filled rows × cols matrix or panics
func MustNew(rows, cols int) *Matrix {
	m, err := New(rows, cols)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// Rows returns the number of rows (input dimension).
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns (instar units).
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the element at row r, column c. Indexes are not checked.
func (m *Matrix) At(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v float64) {
	m.data[r*m.cols+c] = v
}

// Column copies column c into dst, allocating it when dst is too short, and returns it.
func (m *Matrix) Column(c int, dst []float64) []float64 {
	if cap(dst) < m.rows {
		dst = make([]float64, m.rows)
	}
	dst = dst[:m.rows]
	for r := range dst {
		dst[r] = m.data[r*m.cols+c]
	}
	return dst
}

// SetColumn overwrites column c with v.
func (m *Matrix) SetColumn(c int, v []float64) error {
	if err := m.CheckColumn(c); err != nil {
		return err
	}
	if err := m.CheckInput(v); err != nil {
		return err
	}
	for r, x := range v {
		m.data[r*m.cols+c] = x
	}
	return nil
}

// CheckColumn reports ErrIndex when c is not a valid column.
func (m *Matrix) CheckColumn(c int) error {
	if c < 0 || c >= m.cols {
		return errors.Wrapf(ErrIndex, "column %d of %d", c, m.cols)
	}
	return nil
}

// CheckInput reports ErrShape when v cannot be laid over a column.
func (m *Matrix) CheckInput(v []float64) error {
	if len(v) != m.rows {
		return errors.Wrapf(ErrShape, "vector of length %d, matrix has %d rows", len(v), m.rows)
	}
	return nil
}

// Rows2D returns a copy of the matrix as a slice of rows.
func (m *Matrix) Rows2D() [][]float64 {
	o := make([][]float64, m.rows)
	for r := range o {
		o[r] = append([]float64(nil), m.data[r*m.cols:(r+1)*m.cols]...)
	}
	return o
}

// Load overwrites the matrix from a slice of rows of the same dimensions.
// Nothing is written unless every row fits.
func (m *Matrix) Load(rows [][]float64) error {
	if len(rows) != m.rows {
		return errors.Wrapf(ErrShape, "%d rows, matrix has %d", len(rows), m.rows)
	}
	for r, row := range rows {
		if len(row) != m.cols {
			return errors.Wrapf(ErrShape, "row %d has %d columns, matrix has %d", r, len(row), m.cols)
		}
	}
	for r, row := range rows {
		copy(m.data[r*m.cols:(r+1)*m.cols], row)
	}
	return nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		rows: m.rows,
		cols: m.cols,
		data: append([]float64(nil), m.data...),
	}
}

// Equal reports whether both matrices have the same dimensions and identical elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}
