// Package matrix provides the dense matrix value type shared by the cache
// container and the solver. It deliberately carries no linear algebra
// dependency; inversion lives behind the solver's Inverter port.
package matrix

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Matrix is a dense, row-major numeric matrix. The zero value is the empty
// placeholder matrix: dimensionless and not usable for inversion.
//
// Constructors deep-copy their input and accessors return copies, so a Matrix
// held by a container cannot be mutated through slices retained by callers.
type Matrix struct {
	rows, cols int
	data       [][]float64
}

// Zero returns the empty placeholder matrix.
func Zero() Matrix { return Matrix{} }

// FromRows builds a Matrix from a slice of rows. The input is deep-copied.
// Returns ErrEmpty for zero rows or zero columns, ErrRagged when rows differ
// in length.
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, ErrEmpty
	}
	cols := len(rows[0])
	data := make([][]float64, len(rows))
	for i, r := range rows {
		if len(r) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(r), cols)
		}
		data[i] = make([]float64, cols)
		copy(data[i], r)
	}
	return Matrix{rows: len(rows), cols: cols, data: data}, nil
}

// Identity returns the n×n identity matrix. Non-positive n yields the empty
// placeholder.
func Identity(n int) Matrix {
	if n <= 0 {
		return Matrix{}
	}
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
		data[i][i] = 1
	}
	return Matrix{rows: n, cols: n, data: data}
}

// Dims returns the row and column counts.
func (m Matrix) Dims() (r, c int) { return m.rows, m.cols }

// IsEmpty reports whether m is the placeholder matrix.
func (m Matrix) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

// IsSquare reports whether m is non-empty with equal dimensions.
func (m Matrix) IsSquare() bool { return !m.IsEmpty() && m.rows == m.cols }

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 { return m.data[i][j] }

// Rows returns a deep copy of the matrix contents.
func (m Matrix) Rows() [][]float64 {
	if m.IsEmpty() {
		return nil
	}
	out := make([][]float64, m.rows)
	for i, r := range m.data {
		out[i] = make([]float64, m.cols)
		copy(out[i], r)
	}
	return out
}

// Clone returns an independent copy of m.
func (m Matrix) Clone() Matrix {
	if m.IsEmpty() {
		return Matrix{}
	}
	return Matrix{rows: m.rows, cols: m.cols, data: m.Rows()}
}

// Equal reports exact element-wise equality.
func (m Matrix) Equal(o Matrix) bool { return m.EqualApprox(o, 0) }

// EqualApprox reports element-wise equality within tol.
func (m Matrix) EqualApprox(o Matrix, tol float64) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		for j := range m.data[i] {
			if math.Abs(m.data[i][j]-o.data[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// Mul returns the matrix product m × o. Returns ErrDimMismatch when the inner
// dimensions differ.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	if m.cols != o.rows {
		return Matrix{}, fmt.Errorf("%w: %dx%d × %dx%d", ErrDimMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	data := make([][]float64, m.rows)
	for i := range data {
		data[i] = make([]float64, o.cols)
		for j := 0; j < o.cols; j++ {
			var sum float64
			for k := 0; k < m.cols; k++ {
				sum += m.data[i][k] * o.data[k][j]
			}
			data[i][j] = sum
		}
	}
	return Matrix{rows: m.rows, cols: o.cols, data: data}, nil
}

// String returns a human-readable rendering of the matrix.
func (m Matrix) String() string {
	if m.IsEmpty() {
		return "Matrix (empty)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix (%dx%d):\n", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		b.WriteString("[")
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&b, " %8.4f", m.data[i][j])
		}
		b.WriteString(" ]\n")
	}
	return b.String()
}

// MarshalJSON encodes the matrix as a plain 2D number array.
func (m Matrix) MarshalJSON() ([]byte, error) {
	if m.IsEmpty() {
		return []byte("[]"), nil
	}
	return json.Marshal(m.data)
}

// UnmarshalJSON decodes a 2D number array, enforcing the same shape rules as
// FromRows.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	parsed, err := FromRows(rows)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
