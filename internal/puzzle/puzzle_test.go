package puzzle

import (
	"errors"
	"strings"
	"testing"

	"sudoku_solver_go/internal/grid"
)

// Mirrors examples/sudoku1.txt.
const sudoku1 = `# Example sudoku
xxx|26x|7x1
68x|x7x|x9x
19x|xx4|5xx
-----------
82x|1xx|x4x
xx4|6x2|9xx
x5x|xx3|x28
-----------
xx9|3xx|x74
x4x|x5x|x36
7x3|x18|xxx
`

// Mirrors examples/sudoku1-solution.txt.
const sudoku1Solution = `# Example sudoku (solved)
435|269|781
682|571|493
197|834|562
-----------
826|195|347
374|682|915
951|743|628
-----------
519|326|874
248|957|136
763|418|259
`

func read(t *testing.T, content string) *Puzzle {
	t.Helper()
	p := New()
	if err := p.Read(strings.NewReader(content)); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	return p
}

func TestHasOnlyUniqueDigits(t *testing.T) {
	cases := []struct {
		values []int
		want   bool
	}{
		{[]int{}, true},
		{[]int{0, 0, 0}, true},
		{[]int{1, 2, 3}, true},
		{[]int{1, 1, 2}, false},
		{[]int{0, 0, 1, 2, 3}, true},
		{[]int{0, 1, 0, 1}, false},
	}
	for _, tc := range cases {
		if got := HasOnlyUniqueDigits(tc.values); got != tc.want {
			t.Errorf("HasOnlyUniqueDigits(%v) = %v, want %v", tc.values, got, tc.want)
		}
	}
}

func TestReadStripsDecoration(t *testing.T) {
	p := read(t, sudoku1)
	if got := p.Grid.Get(grid.Coordinate{Row: 0, Column: 8}); got != 1 {
		t.Errorf("Get(0,8) = %d, want 1", got)
	}
	if got := p.Grid.Get(grid.Coordinate{Row: 0, Column: 0}); got != 0 {
		t.Errorf("Get(0,0) = %d, want 0", got)
	}
	if got := len(p.Grid.MutableFields()); got != 45 {
		t.Errorf("mutable field count = %d, want 45", got)
	}
}

func TestReadMalformedInput(t *testing.T) {
	cases := map[string]string{
		"non-digit":     strings.Replace(sudoku1, "68x", "68a", 1),
		"short row":     strings.Replace(sudoku1, "68x|x7x|x9x", "68x|x7x|x9", 1),
		"long row":      strings.Replace(sudoku1, "68x|x7x|x9x", "68x|x7x|x9xx", 1),
		"missing row":   strings.Replace(sudoku1, "68x|x7x|x9x\n", "", 1),
		"negative-like": strings.Replace(sudoku1, "68x", "6+x", 1),
	}
	for name, content := range cases {
		p := New()
		if err := p.Read(strings.NewReader(content)); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("%s: expected ErrMalformedInput, got %v", name, err)
		}
	}
}

func TestValidity(t *testing.T) {
	p := read(t, sudoku1Solution)
	if !p.IsValid() {
		t.Fatal("solution should be valid")
	}
	for i := 0; i < 9; i++ {
		if !p.IsValidRow(i) || !p.IsValidCol(i) || !p.IsValidParcel(i) {
			t.Fatalf("unit %d should be valid", i)
		}
	}

	p.Grid.Set(grid.Coordinate{Row: 0, Column: 0}, 6)
	if p.IsValid() {
		t.Error("duplicate in parcel 0 should invalidate the puzzle")
	}
	if p.IsValidParcel(0) {
		t.Error("parcel 0 should be invalid")
	}
}

func TestIsDone(t *testing.T) {
	if p := read(t, sudoku1Solution); !p.IsDone() {
		t.Error("solved fixture should be done")
	}
	if p := read(t, sudoku1); p.IsDone() {
		t.Error("unsolved fixture should not be done")
	}
}

func TestMutableFieldsOrder(t *testing.T) {
	p := read(t, sudoku1)
	fields := p.Grid.MutableFields()
	if fields[0] != (grid.Coordinate{Row: 0, Column: 0}) {
		t.Errorf("first mutable field = %s, want (0,0)", fields[0])
	}
	if fields[len(fields)-1] != (grid.Coordinate{Row: 8, Column: 8}) {
		t.Errorf("last mutable field = %s, want (8,8)", fields[len(fields)-1])
	}
	// Row-major ordering.
	for i := 1; i < len(fields); i++ {
		prev, cur := fields[i-1], fields[i]
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Column <= prev.Column) {
			t.Fatalf("mutable fields not row-major at %d: %s then %s", i, prev, cur)
		}
	}
}

func TestFieldGuesses(t *testing.T) {
	p := read(t, sudoku1)

	cases := []struct {
		coord grid.Coordinate
		want  []int
	}{
		{grid.Coordinate{Row: 0, Column: 0}, []int{3, 4, 5}},
		{grid.Coordinate{Row: 8, Column: 8}, []int{2, 5, 9}},
	}
	for _, tc := range cases {
		got := p.FieldGuesses(tc.coord)
		if len(got) != len(tc.want) {
			t.Fatalf("FieldGuesses(%s) = %v, want %v", tc.coord, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("FieldGuesses(%s) = %v, want %v", tc.coord, got, tc.want)
			}
		}
	}
}

func TestUnsolvedRestoresInput(t *testing.T) {
	p := read(t, sudoku1)
	original := p.Grid.Format()

	for _, f := range p.Grid.MutableFields() {
		p.Grid.Set(f, 9)
	}
	if got := p.Unsolved().Format(); got != original {
		t.Errorf("Unsolved mismatch:\n%s\nwant:\n%s", got, original)
	}
	// Unsolved must not touch the live grid.
	if p.Grid.Get(grid.Coordinate{Row: 0, Column: 0}) != 9 {
		t.Error("Unsolved mutated the live grid")
	}
}
