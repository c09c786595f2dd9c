package grid

import "fmt"

// Coordinate identifies a single cell by row and column, both in [0,9).
type Coordinate struct {
	Row    int
	Column int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// ParcelIndex returns the index (0-8, row major) of the 3x3 parcel the
// coordinate belongs to.
func (c Coordinate) ParcelIndex() int {
	return (c.Row/3)*3 + c.Column/3
}
