// Package solver implements the two interchangeable solving strategies:
// exhaustive backtracking and a simulated-annealing Monte Carlo search.
package solver

import (
	"errors"
	"fmt"

	"sudoku_solver_go/internal/puzzle"
)

// Algorithm names accepted by New.
const (
	AlgorithmBacktracing = "backtracing"
	AlgorithmMontecarlo  = "montecarlo"
)

var (
	// ErrUnsolvable reports a puzzle for which the backtracking search ran
	// out of candidates at the first mutable field, i.e. no assignment of
	// the mutable fields can satisfy the constraints.
	ErrUnsolvable = errors.New("solver: puzzle is unsolvable")

	// ErrUnknownAlgorithm reports an algorithm name New does not know.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
)

// Solver is the common contract of the solving strategies. Solve takes the
// puzzle, mutates it in place and hands it back; callers must not touch the
// puzzle during the call. After Solve returns, IsSuccess reports whether
// the try budget was sufficient and Tries how many steps were used. An
// exhausted budget is not an error: Solve returns the puzzle in whatever
// intermediate state the last step produced.
type Solver interface {
	Solve(p *puzzle.Puzzle) (*puzzle.Puzzle, error)
	IsSuccess() bool
	Tries() uint
}

// New returns a solver for the named algorithm. Montecarlo is created with
// its default temperature and a time-seeded random source.
func New(algorithm string, maxTries uint) (Solver, error) {
	switch algorithm {
	case AlgorithmBacktracing:
		return NewBacktracing(maxTries), nil
	case AlgorithmMontecarlo:
		return NewMontecarlo(maxTries, DefaultTemperature, nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}
