package stat

import (
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// SpreadTable bootstraps data once per entry of sizes: row i holds n
// values of fn on resamples of size sizes[i].
//
// Rows are computed by up to workers goroutines (workers <= 0 means one).
// Every row gets its own generator spawned from rng before any work
// starts, so the table does not depend on the number of workers.
func SpreadTable(rng *rand.Rand, data []float64, fn Statistic, n int, sizes []int, workers int) [][]float64 {
	rngs := make([]*rand.Rand, len(sizes))
	for i := range rngs {
		rngs[i] = Spawn(rng)
	}

	if workers <= 0 {
		workers = 1
	}
	table := make([][]float64, len(sizes))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, k := range sizes {
		g.Go(func() error {
			table[i] = Bootstrap(rngs[i], data, fn, n, k)
			return nil
		})
	}
	_ = g.Wait() // tasks never fail
	return table
}

// Column applies fn to every row of table.
func Column(table [][]float64, fn func(row []float64) float64) []float64 {
	col := make([]float64, len(table))
	for i, row := range table {
		col[i] = fn(row)
	}
	return col
}

// PercentileColumn is the p-th percentile of every row of table.
func PercentileColumn(table [][]float64, p float64) []float64 {
	return Column(table, func(row []float64) float64 { return Percentile(row, p) })
}
