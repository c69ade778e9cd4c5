package practice

import (
	"github.com/abhisek/paomind/internal/pao"
)

// Range narrows the numbers a session draws from. When UseAll is set,
// Start and End are ignored.
type Range struct {
	UseAll bool
	Start  int `validate:"min=0,max=99"`
	End    int `validate:"min=0,max=99,gtefield=Start"`
}

// FullRange selects every number in the table.
func FullRange() Range {
	return Range{UseAll: true, Start: pao.MinNumber, End: pao.MaxNumber}
}

// Contains reports whether n falls inside the range.
func (r Range) Contains(n int) bool {
	return r.UseAll || (n >= r.Start && n <= r.End)
}

// Pool returns the table keys inside r in ascending order.
func Pool(table pao.Table, r Range) []int {
	var pool []int
	for _, n := range table.Keys() {
		if r.Contains(n) {
			pool = append(pool, n)
		}
	}
	return pool
}
