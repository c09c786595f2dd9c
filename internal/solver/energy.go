package solver

import (
	"github.com/duke-git/lancet/v2/slice"

	"sudoku_solver_go/internal/puzzle"
)

// energyMax is 3 * 3^4: the distinct-count sum of a fully solved grid
// (9 distinct values in each of the 9 rows, 9 columns and 9 parcels).
const energyMax = 243

// calcEnergy scores how far a grid is from a valid solution: energyMax
// minus the number of distinct values in each column, row and parcel. A
// solved grid has energy 0.
func calcEnergy(p *puzzle.Puzzle) int {
	energy := energyMax
	for index := 0; index < 9; index++ {
		energy -= len(slice.Unique(p.Grid.Col(index)))
		energy -= len(slice.Unique(p.Grid.Row(index)))
		energy -= len(slice.Unique(flattenParcel(p, index)))
	}
	return energy
}

func flattenParcel(p *puzzle.Puzzle, index int) []int {
	parcel := p.Grid.Parcel(index)
	values := make([]int, 0, len(parcel)*len(parcel))
	for _, row := range parcel {
		values = append(values, row...)
	}
	return values
}
