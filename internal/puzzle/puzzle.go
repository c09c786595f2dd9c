package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/duke-git/lancet/v2/slice"

	"sudoku_solver_go/internal/grid"
)

// ErrMalformedInput reports puzzle text that does not describe a 9x9 digit
// grid (wrong row or column count, or a character that is not a digit).
var ErrMalformedInput = errors.New("puzzle: malformed input")

var allDigits = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

// Puzzle wraps a Grid and exposes the sudoku rules on top of it: validity
// and completion checks plus the legal guesses for a single cell.
//
// Naming follows the usual sudoku terms:
//
//	valid:  no duplicated non-zero value in a row, column or parcel
//	done:   all mutable fields are filled and the puzzle is valid
//	parcel: a 3x3 field group, numbered 0-8 row major
type Puzzle struct {
	Grid *grid.Grid
}

// New creates a Puzzle over an empty grid. Use Read to load actual
// content.
func New() *Puzzle {
	return &Puzzle{Grid: grid.Empty()}
}

// Read parses a sudoku from its text form and rebuilds the grid from
// scratch. Lines containing '#' are comments, lines containing '-' are
// parcel separators; both are discarded. '|' characters are stripped and
// 'x' marks an empty cell.
func (p *Puzzle) Read(r io.Reader) error {
	var rows [][]int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "#") || strings.Contains(line, "-") {
			continue
		}
		line = strings.ReplaceAll(line, "|", "")
		line = strings.ReplaceAll(line, "x", "0")
		if line == "" {
			continue
		}

		row := make([]int, 0, grid.Size)
		for _, c := range line {
			if c < '0' || c > '9' {
				return fmt.Errorf("%w: unexpected character %q", ErrMalformedInput, c)
			}
			row = append(row, int(c-'0'))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading puzzle: %w", err)
	}

	g, err := grid.New(rows)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	p.Grid = g
	return nil
}

// IsValidRow reports whether the row contains no duplicate digits.
func (p *Puzzle) IsValidRow(index int) bool {
	return HasOnlyUniqueDigits(p.Grid.Row(index))
}

// IsValidCol reports whether the column contains no duplicate digits.
func (p *Puzzle) IsValidCol(index int) bool {
	return HasOnlyUniqueDigits(p.Grid.Col(index))
}

// IsValidParcel reports whether the parcel contains no duplicate digits.
func (p *Puzzle) IsValidParcel(index int) bool {
	return HasOnlyUniqueDigits(flatten(p.Grid.Parcel(index)))
}

// IsValid reports whether all 9 parcels are free of duplicates. Rows and
// columns are not re-checked here: the backtracking solver only ever
// places values that are legal for their row and column, so parcel
// validity is the termination notion.
func (p *Puzzle) IsValid() bool {
	for pi := 0; pi < grid.Size; pi++ {
		if !p.IsValidParcel(pi) {
			return false
		}
	}
	return true
}

// IsDone reports whether every mutable field is filled and the puzzle is
// valid.
func (p *Puzzle) IsDone() bool {
	for _, f := range p.Grid.MutableFields() {
		if p.Grid.Get(f) == 0 {
			return false
		}
	}
	return p.IsValid()
}

// FieldGuesses returns the digits 1-9, in ascending order, that do not yet
// appear in the cell's row, column or parcel.
func (p *Puzzle) FieldGuesses(c grid.Coordinate) []int {
	seen := p.Grid.Row(c.Row)
	seen = append(seen, p.Grid.Col(c.Column)...)
	seen = append(seen, flatten(p.Grid.Parcel(c.ParcelIndex()))...)
	return slice.Difference(allDigits, seen)
}

// Unsolved returns a copy of the grid with every mutable field reset to
// zero, i.e. the puzzle as it was read.
func (p *Puzzle) Unsolved() *grid.Grid {
	g := p.Grid.Clone()
	g.Reset()
	return g
}

func (p *Puzzle) String() string {
	return p.Grid.Format()
}
