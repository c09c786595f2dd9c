// Package visualizer renders puzzles for terminal output.
package visualizer

import (
	"fmt"
	"io"
	"strings"

	"sudoku_solver_go/internal/puzzle"
)

// Visualizer handles the textual presentation of a puzzle.
type Visualizer struct {
	puzzle *puzzle.Puzzle
}

func New(p *puzzle.Puzzle) *Visualizer {
	return &Visualizer{puzzle: p}
}

// Render returns the puzzle's current grid as text. With showUnsolved set,
// every line of the unsolved grid is paired with the matching line of the
// current grid, joined by an arrow.
func (v *Visualizer) Render(showUnsolved bool) string {
	solved := v.puzzle.Grid.Format()
	if !showUnsolved {
		return solved
	}

	unsolved := v.puzzle.Unsolved().Format()
	solvedLines := strings.Split(solved, "\n")

	var out strings.Builder
	for i, line := range strings.Split(unsolved, "\n") {
		if i > 0 {
			out.WriteString("\n")
		}
		fmt.Fprintf(&out, "%s -> %s", line, solvedLines[i])
	}
	return out.String()
}

// Print writes the rendered puzzle to w, followed by a newline.
func (v *Visualizer) Print(w io.Writer, showUnsolved bool) {
	fmt.Fprintln(w, v.Render(showUnsolved))
}
