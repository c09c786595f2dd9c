package visualizer

import (
	"strings"
	"testing"

	"sudoku_solver_go/internal/grid"
	"sudoku_solver_go/internal/puzzle"
)

const tiny = `12x|456|789
456|789|123
789|123|456
-----------
214|365|897
365|897|214
897|214|365
-----------
531|642|978
642|978|531
978|531|642
`

func TestRenderPlain(t *testing.T) {
	p := puzzle.New()
	if err := p.Read(strings.NewReader(tiny)); err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	got := New(p).Render(false)
	if !strings.HasPrefix(got, "12x|456|789\n") {
		t.Errorf("unexpected first line: %q", strings.SplitN(got, "\n", 2)[0])
	}
	if strings.Count(got, "-----------") != 2 {
		t.Errorf("expected two separator lines:\n%s", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("rendered grid must not end with a newline")
	}
}

func TestRenderSideBySide(t *testing.T) {
	p := puzzle.New()
	if err := p.Read(strings.NewReader(tiny)); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	p.Grid.Set(grid.Coordinate{Row: 0, Column: 2}, 3)

	got := New(p).Render(true)
	lines := strings.Split(got, "\n")
	if len(lines) != 11 {
		t.Fatalf("expected 11 paired lines, got %d", len(lines))
	}
	if lines[0] != "12x|456|789 -> 123|456|789" {
		t.Errorf("first paired line = %q", lines[0])
	}
	if lines[3] != "----------- -> -----------" {
		t.Errorf("separator line = %q", lines[3])
	}
}
