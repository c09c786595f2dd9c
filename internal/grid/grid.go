package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the edge length of the grid; parcels are ParcelSize x ParcelSize.
const (
	Size       = 9
	ParcelSize = 3
)

var (
	// ErrInvalidDimensions reports a cell matrix that is not exactly 9x9
	// or contains a value outside 0..9.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	// ErrOutOfBounds reports a coordinate outside [0,9)x[0,9). Access with
	// such a coordinate is a contract violation; Get and Set panic with a
	// value wrapping this error.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Grid owns the 9x9 cell values (0 = empty, 1-9 = filled) and the list of
// coordinates that were empty at construction time. That list defines the
// solve order and which cells Reset may touch; it never changes even though
// cell values do.
type Grid struct {
	cells         [][]int
	mutableFields []Coordinate
}

// New constructs a Grid from a 9x9 digit matrix and caches its mutable
// fields in row-major order. The matrix is copied; the grid exclusively
// owns its cells.
func New(cells [][]int) (*Grid, error) {
	if len(cells) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidDimensions, Size, len(cells))
	}
	for r, row := range cells {
		if len(row) != Size {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidDimensions, r, len(row), Size)
		}
		for c, v := range row {
			if v < 0 || v > Size {
				return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrInvalidDimensions, v, r, c)
			}
		}
	}

	owned := make([][]int, Size)
	for i, row := range cells {
		owned[i] = make([]int, Size)
		copy(owned[i], row)
	}

	g := &Grid{cells: owned}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if cells[r][c] == 0 {
				g.mutableFields = append(g.mutableFields, Coordinate{Row: r, Column: c})
			}
		}
	}
	return g, nil
}

// Empty returns an all-zero grid.
func Empty() *Grid {
	cells := make([][]int, Size)
	for i := range cells {
		cells[i] = make([]int, Size)
	}
	g, _ := New(cells)
	return g
}

func (g *Grid) checkBounds(c Coordinate) {
	if c.Row < 0 || c.Row >= Size || c.Column < 0 || c.Column >= Size {
		panic(fmt.Errorf("%w: %s", ErrOutOfBounds, c))
	}
}

// Get returns the value at c. Panics with ErrOutOfBounds on an invalid
// coordinate.
func (g *Grid) Get(c Coordinate) int {
	g.checkBounds(c)
	return g.cells[c.Row][c.Column]
}

// Set stores value at c. Panics with ErrOutOfBounds on an invalid
// coordinate.
func (g *Grid) Set(c Coordinate, value int) {
	g.checkBounds(c)
	g.cells[c.Row][c.Column] = value
}

// Row returns the 9 values of a row in column order.
func (g *Grid) Row(index int) []int {
	values := make([]int, Size)
	copy(values, g.cells[index])
	return values
}

// Col returns the 9 values of a column in row order.
func (g *Grid) Col(index int) []int {
	values := make([]int, Size)
	for r := 0; r < Size; r++ {
		values[r] = g.cells[r][index]
	}
	return values
}

// Parcel returns the 3x3 block with the given index (0-8, row major).
// The block is filled column by column, matching the order downstream
// rendering and tests rely on.
func (g *Grid) Parcel(index int) [][]int {
	startRow := (index / ParcelSize) * ParcelSize
	startCol := (index % ParcelSize) * ParcelSize
	parcel := make([][]int, ParcelSize)
	for i := range parcel {
		parcel[i] = make([]int, ParcelSize)
	}
	for ci := 0; ci < ParcelSize; ci++ {
		for ri := 0; ri < ParcelSize; ri++ {
			parcel[ri][ci] = g.cells[startRow+ri][startCol+ci]
		}
	}
	return parcel
}

// ParcelFields returns all 9 coordinates of a parcel in row-major order.
func ParcelFields(parcelIndex int) []Coordinate {
	startRow := (parcelIndex / ParcelSize) * ParcelSize
	startCol := (parcelIndex % ParcelSize) * ParcelSize
	fields := make([]Coordinate, 0, Size)
	for r := 0; r < ParcelSize; r++ {
		for c := 0; c < ParcelSize; c++ {
			fields = append(fields, Coordinate{Row: startRow + r, Column: startCol + c})
		}
	}
	return fields
}

// MutableFields returns the coordinates that were empty at construction,
// in row-major order.
func (g *Grid) MutableFields() []Coordinate {
	return g.mutableFields
}

// MutableFieldsOfParcel returns the subset of mutable fields that belong to
// the given parcel, preserving their row-major order.
func (g *Grid) MutableFieldsOfParcel(parcelIndex int) []Coordinate {
	var fields []Coordinate
	for _, f := range ParcelFields(parcelIndex) {
		if g.isMutable(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

func (g *Grid) isMutable(c Coordinate) bool {
	for _, f := range g.mutableFields {
		if f == c {
			return true
		}
	}
	return false
}

// Reset sets every mutable field back to zero. Originally filled cells are
// untouched.
func (g *Grid) Reset() {
	for _, f := range g.mutableFields {
		g.Set(f, 0)
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]int, Size)
	for i, row := range g.cells {
		cells[i] = make([]int, Size)
		copy(cells[i], row)
	}
	fields := make([]Coordinate, len(g.mutableFields))
	copy(fields, g.mutableFields)
	return &Grid{cells: cells, mutableFields: fields}
}

// Format renders the grid as text: 'x' for empty cells, the digit
// otherwise, a '|' before columns 3 and 6, a line of 11 dashes before rows
// 3 and 6. No trailing newline.
func (g *Grid) Format() string {
	var out strings.Builder
	for i, row := range g.cells {
		if i > 0 && i%ParcelSize == 0 {
			out.WriteString(strings.Repeat("-", 11))
			out.WriteString("\n")
		}
		for j, v := range row {
			if j > 0 && j%ParcelSize == 0 {
				out.WriteString("|")
			}
			if v == 0 {
				out.WriteString("x")
			} else {
				fmt.Fprintf(&out, "%d", v)
			}
		}
		if i < len(g.cells)-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}

func (g *Grid) String() string {
	return g.Format()
}
