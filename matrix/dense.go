// Package matrix provides core linear algebra primitives over commutative
// rings. Dense is the concrete, row-major implementation of the Matrix
// interface, storing elements in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lindet/ring"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of ring elements.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Every entry belongs to rg; the zero-dimension shapes (0×0, 0×c, r×0) are
// legal and arise from the zero module.
type Dense struct {
	rg   ring.Ring      // coefficient ring of every entry
	r, c int            // number of rows and columns
	data []ring.Element // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to the ring's zero.
// Stage 1 (Validate): ensure rg non-nil and rows, cols >= 0.
// Stage 2 (Prepare): allocate flat backing slice and fill with rg.Zero().
// Stage 3 (Finalize): return new Dense or ErrNilRing/ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rg ring.Ring, rows, cols int) (*Dense, error) {
	// Validate ring presence
	if rg == nil {
		return nil, ErrNilRing
	}
	// Validate dimensions; zero is legal, negative is not
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice and fill with the additive identity
	data := make([]ring.Element, rows*cols)
	zero := rg.Zero()
	for i := range data {
		data[i] = zero
	}

	// Return initialized Dense
	return &Dense{rg: rg, r: rows, c: cols, data: data}, nil
}

// NewIdentity returns I_n over rg (ones on the diagonal, zeros elsewhere).
// n == 0 yields the empty identity, the matrix of the zero module.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(rg ring.Ring, n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(rg, n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	one := rg.One()
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = one
	}

	// Return the identity matrix.
	return I, nil
}

// FromRows builds a Dense from explicit row slices.
// Stage 1 (Validate): rg non-nil; all rows share one length; no nil entries.
// Stage 2 (Prepare): copy cell by cell into a fresh backing slice.
// Complexity: O(r*c).
func FromRows(rg ring.Ring, rows [][]ring.Element) (*Dense, error) {
	if rg == nil {
		return nil, ErrNilRing
	}
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(rg, r, c)
	if err != nil {
		return nil, err
	}
	var i, j int // predeclared loop iterators (deterministic order)
	for i = 0; i < r; i++ {
		// Ragged input is a shape error, not a panic.
		if len(rows[i]) != c {
			return nil, ErrBadShape
		}
		for j = 0; j < c; j++ {
			if rows[i][j] == nil {
				return nil, denseErrorf("FromRows", i, j, ErrNilElement)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// FromInts builds a Dense by embedding int64 entries through rg.FromInt.
// Convenience constructor for tests and examples; same validation as FromRows.
// Complexity: O(r*c).
func FromInts(rg ring.Ring, rows [][]int64) (*Dense, error) {
	if rg == nil {
		return nil, ErrNilRing
	}
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(rg, r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrBadShape
		}
		for j = 0; j < c; j++ {
			m.data[i*c+j] = rg.FromInt(rows[i][j])
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// Ring returns the coefficient ring of the matrix.
// Complexity: O(1).
func (m *Dense) Ring() ring.Ring {
	return m.rg // return stored ring
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (ring.Element, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf; reject nil values.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v ring.Element) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Reject nil values; a Dense cell always holds a ring element.
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilElement)
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Elements are immutable values, so a slice copy is a deep copy.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]ring.Element, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{rg: m.rg, r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")       // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			sb.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
