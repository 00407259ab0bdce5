package qrcode

import "fmt"

// Matrix is an immutable grid of symbol modules; true marks a dark module.
// Rows are indexed by y, columns by x.
type Matrix struct {
	rows [][]bool
}

// NewMatrix copies rows into a Matrix. Rows must be non-empty and of equal
// length.
func NewMatrix(rows [][]bool) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, fmt.Errorf("%w: empty matrix", ErrRender)
	}
	width := len(rows[0])
	cp := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return Matrix{}, fmt.Errorf("%w: row %d has %d modules, want %d", ErrRender, y, len(row), width)
		}
		cp[y] = append([]bool(nil), row...)
	}
	return Matrix{rows: cp}, nil
}

// Width returns the number of modules per row.
func (m Matrix) Width() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}

// Height returns the number of rows.
func (m Matrix) Height() int { return len(m.rows) }

// Dark reports whether the module at (x, y) is dark. Out-of-range
// coordinates are light, which is what the quiet zone looks like.
func (m Matrix) Dark(x, y int) bool {
	if y < 0 || y >= len(m.rows) || x < 0 || x >= len(m.rows[y]) {
		return false
	}
	return m.rows[y][x]
}

// Equal reports whether both matrices have the same shape and modules.
func (m Matrix) Equal(o Matrix) bool {
	if m.Width() != o.Width() || m.Height() != o.Height() {
		return false
	}
	for y := range m.rows {
		for x := range m.rows[y] {
			if m.rows[y][x] != o.rows[y][x] {
				return false
			}
		}
	}
	return true
}

// Empty reports whether m holds no modules.
func (m Matrix) Empty() bool { return m.Width() == 0 || m.Height() == 0 }
