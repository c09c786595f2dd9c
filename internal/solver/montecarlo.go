package solver

import (
	"math"
	"math/rand"
	"time"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/sirupsen/logrus"

	"sudoku_solver_go/internal/grid"
	"sudoku_solver_go/internal/puzzle"
)

// DefaultTemperature is the annealing temperature used by the factory.
// See https://www.lptmc.jussieu.fr/user/talbot/sudoku.html for the method.
const DefaultTemperature = 0.15

// Montecarlo solves the puzzle with a Metropolis Monte Carlo search. The
// parcels are first filled so that each contains every digit exactly once;
// the search then swaps values within random parcels, accepting swaps that
// lower the row/column duplication energy and occasionally ones that raise
// it. The search is best effort: the try budget is the only termination
// guarantee.
type Montecarlo struct {
	maxTries    uint
	tries       uint
	temperature float64
	rng         *rand.Rand
}

// NewMontecarlo creates a Monte Carlo solver. A nil rng falls back to a
// time-seeded source; tests inject a fixed seed for determinism.
func NewMontecarlo(maxTries uint, temperature float64, rng *rand.Rand) *Montecarlo {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Montecarlo{
		maxTries:    maxTries,
		temperature: temperature,
		rng:         rng,
	}
}

// IsSuccess reports whether the try counter stayed below the budget.
func (m *Montecarlo) IsSuccess() bool {
	return m.tries < m.maxTries
}

// Tries returns the number of annealing steps the last Solve call used.
// The initial parcel fill is not counted.
func (m *Montecarlo) Tries() uint {
	return m.tries
}

// Solve runs the annealing loop until the puzzle is done with zero energy
// or the try budget is exhausted.
func (m *Montecarlo) Solve(p *puzzle.Puzzle) (*puzzle.Puzzle, error) {
	m.fillParcels(p)

	energyLast := calcEnergy(p)
	logrus.Debugf("initial energy: %d", energyLast)

	for !(p.IsDone() && energyLast == 0) {
		fields := p.Grid.MutableFieldsOfParcel(m.rng.Intn(grid.Size))
		if len(fields) < 2 {
			// Nothing to swap in this parcel; the draw still costs a try
			// so the loop stays bounded.
			if m.countTry() {
				break
			}
			continue
		}
		m.rng.Shuffle(len(fields), func(i, j int) {
			fields[i], fields[j] = fields[j], fields[i]
		})
		f1, f2 := fields[0], fields[1]

		v1 := p.Grid.Get(f1)
		v2 := p.Grid.Get(f2)
		p.Grid.Set(f1, v2)
		p.Grid.Set(f2, v1)

		energy := calcEnergy(p)
		accept := math.Exp(float64(energyLast-energy)/m.temperature) >= m.rng.Float64()
		if accept {
			energyLast = energy
		} else {
			p.Grid.Set(f1, v1)
			p.Grid.Set(f2, v2)
		}

		if m.countTry() {
			break
		}
	}

	return p, nil
}

// fillParcels assigns the digits missing from each parcel to its mutable
// fields, in ascending order. Afterwards every parcel holds each digit
// 1-9 exactly once; only rows and columns may still contain duplicates,
// and the in-parcel swaps of the annealing loop keep it that way.
func (m *Montecarlo) fillParcels(p *puzzle.Puzzle) {
	for pi := 0; pi < grid.Size; pi++ {
		present := slice.Filter(slice.Unique(flattenParcel(p, pi)), func(_ int, v int) bool { return v > 0 })
		missing := slice.Difference([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, present)
		for i, field := range p.Grid.MutableFieldsOfParcel(pi) {
			p.Grid.Set(field, missing[i])
		}
	}
}

func (m *Montecarlo) countTry() (exhausted bool) {
	m.tries++
	return m.tries >= m.maxTries
}
