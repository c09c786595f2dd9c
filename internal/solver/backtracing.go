package solver

import (
	"github.com/duke-git/lancet/v2/slice"
	"github.com/sirupsen/logrus"

	"sudoku_solver_go/internal/puzzle"
)

// Backtracing walks the mutable fields iteratively: it places the smallest
// legal value greater than the current one and advances, or clears the
// cell and retreats when no such value exists. Every candidate of every
// cell is eventually tried in ascending order, so a solvable puzzle is
// always solved given enough tries.
type Backtracing struct {
	maxTries uint
	tries    uint
}

func NewBacktracing(maxTries uint) *Backtracing {
	return &Backtracing{maxTries: maxTries}
}

// IsSuccess reports whether the try counter stayed below the budget.
func (b *Backtracing) IsSuccess() bool {
	return b.tries < b.maxTries
}

// Tries returns the number of steps the last Solve call used.
func (b *Backtracing) Tries() uint {
	return b.tries
}

// Solve runs the backtracking search. It returns ErrUnsolvable when the
// search has to retreat past the first mutable field, which means no
// candidate assignment exists. An exceeded try budget is reported through
// IsSuccess, not as an error.
func (b *Backtracing) Solve(p *puzzle.Puzzle) (*puzzle.Puzzle, error) {
	mutableFields := p.Grid.MutableFields()
	if len(mutableFields) == 0 && !p.IsDone() {
		return p, ErrUnsolvable
	}

	index := 0
	for !p.IsDone() {
		field := mutableFields[index]
		current := p.Grid.Get(field)
		next := slice.Filter(p.FieldGuesses(field), func(_ int, v int) bool { return v > current })
		if len(next) == 0 {
			// No candidate left here, retry the previous field with
			// its next guess.
			p.Grid.Set(field, 0)
			if index == 0 {
				return p, ErrUnsolvable
			}
			index--
		} else {
			p.Grid.Set(field, next[0])
			index++
		}
		logrus.Tracef("try %d: field %s -> %d", b.tries, field, p.Grid.Get(field))

		b.tries++
		if b.tries >= b.maxTries {
			break
		}
	}

	return p, nil
}
