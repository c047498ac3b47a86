package transport

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fctp/matrix"
)

// Allocation is a sources×destinations matrix of shipped units.
// Cell (i, j) is stored at data[i*cols+j]; the buffer is owned by the value
// and never shared between allocations, so Clone and CopyRowsFrom are the only
// ways data moves between individuals.
//
// Indexing methods (At, Set, Add, Row) expect in-range indices and panic
// otherwise, like slice indexing.
type Allocation struct {
	rows, cols int
	data       []int
}

// NewAllocation returns an all-zero rows×cols allocation.
// Returns matrix.ErrInvalidDimensions when rows or cols is not positive.
func NewAllocation(rows, cols int) (*Allocation, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrix.ErrInvalidDimensions
	}

	return &Allocation{rows: rows, cols: cols, data: make([]int, rows*cols)}, nil
}

// NewAllocationFromRows copies a rectangular [][]int into a new Allocation.
// Ragged or empty input yields matrix.ErrBadShape.
func NewAllocationFromRows(rows [][]int) (*Allocation, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrix.ErrBadShape
	}
	a, _ := NewAllocation(len(rows), len(rows[0]))

	var i int
	for i = range rows {
		if len(rows[i]) != a.cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), a.cols, matrix.ErrBadShape)
		}
		copy(a.data[i*a.cols:(i+1)*a.cols], rows[i])
	}

	return a, nil
}

// Rows returns the number of sources.
func (a *Allocation) Rows() int { return a.rows }

// Cols returns the number of destinations.
func (a *Allocation) Cols() int { return a.cols }

// At returns the amount shipped from source i to destination j.
func (a *Allocation) At(i, j int) int { return a.data[a.index(i, j)] }

// Set overwrites the amount shipped on route (i, j).
func (a *Allocation) Set(i, j, v int) { a.data[a.index(i, j)] = v }

// Add adds delta to route (i, j).
func (a *Allocation) Add(i, j, delta int) { a.data[a.index(i, j)] += delta }

// Row returns a read-only view of row i; it aliases the allocation storage.
func (a *Allocation) Row(i int) []int {
	if i < 0 || i >= a.rows {
		panic(fmt.Sprintf("transport: row %d out of range [0,%d)", i, a.rows))
	}

	return a.data[i*a.cols : (i+1)*a.cols : (i+1)*a.cols]
}

func (a *Allocation) index(i, j int) int {
	if i < 0 || i >= a.rows || j < 0 || j >= a.cols {
		panic(fmt.Sprintf("transport: cell (%d,%d) out of range %dx%d", i, j, a.rows, a.cols))
	}

	return i*a.cols + j
}

// RowSum returns the total shipped out of source i.
func (a *Allocation) RowSum(i int) int {
	return sumInts(a.Row(i))
}

// ColSum returns the total shipped into destination j.
func (a *Allocation) ColSum(j int) int {
	var (
		total int
		i     int
	)
	for i = 0; i < a.rows; i++ {
		total += a.data[i*a.cols+j]
	}

	return total
}

// Total returns the sum of every cell.
func (a *Allocation) Total() int { return sumInts(a.data) }

// SameShape reports whether a and b have identical dimensions.
func (a *Allocation) SameShape(b *Allocation) bool {
	return a.rows == b.rows && a.cols == b.cols
}

// Clone returns a deep copy.
func (a *Allocation) Clone() *Allocation {
	return &Allocation{rows: a.rows, cols: a.cols, data: append([]int(nil), a.data...)}
}

// CopyFrom overwrites a with the contents of src. Shapes must match.
func (a *Allocation) CopyFrom(src *Allocation) error {
	if !a.SameShape(src) {
		return ErrShapeMismatch
	}
	copy(a.data, src.data)

	return nil
}

// CopyRowsFrom copies rows [from, to) of src into the same rows of a.
// Shapes must match and 0 ≤ from ≤ to ≤ Rows().
//
// Complexity: O((to-from)·cols).
func (a *Allocation) CopyRowsFrom(src *Allocation, from, to int) error {
	if !a.SameShape(src) {
		return ErrShapeMismatch
	}
	if from < 0 || to > a.rows || from > to {
		return fmt.Errorf("rows [%d,%d) of %d: %w", from, to, a.rows, matrix.ErrIndexOutOfBounds)
	}
	copy(a.data[from*a.cols:to*a.cols], src.data[from*a.cols:to*a.cols])

	return nil
}

// Equal reports whether a and b have the same shape and contents.
func (a *Allocation) Equal(b *Allocation) bool {
	if !a.SameShape(b) {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// ToRows returns a fresh [][]int copy.
func (a *Allocation) ToRows() [][]int {
	out := make([][]int, a.rows)

	var i int
	for i = 0; i < a.rows; i++ {
		out[i] = append([]int(nil), a.data[i*a.cols:(i+1)*a.cols]...)
	}

	return out
}

// String renders one bracketed row per line.
func (a *Allocation) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < a.rows; i++ {
		sb.WriteByte('[')
		for j = 0; j < a.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", a.data[i*a.cols+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
