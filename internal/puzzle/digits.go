package puzzle

import "github.com/duke-git/lancet/v2/slice"

// HasOnlyUniqueDigits reports whether values contains no duplicate digits.
// Zeros mark unfilled cells and are ignored.
func HasOnlyUniqueDigits(values []int) bool {
	nonzero := slice.Filter(values, func(_ int, v int) bool { return v != 0 })
	return len(slice.Unique(nonzero)) == len(nonzero)
}

// flatten concatenates the rows of a parcel into a single value list.
func flatten(parcel [][]int) []int {
	values := make([]int, 0, len(parcel)*len(parcel))
	for _, row := range parcel {
		values = append(values, row...)
	}
	return values
}
