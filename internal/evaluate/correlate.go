package evaluate

import (
	"math"
	"sort"
)

// SpearmanRho computes the Spearman rank correlation between two
// paired samples, using average ranks for ties. Returns 0 when fewer
// than two pairs are given or when either side is constant (zero rank
// variance), so callers never see NaN.
func SpearmanRho(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0
	}
	rx := averageRanks(xs)
	ry := averageRanks(ys)
	return pearson(rx, ry)
}

// averageRanks assigns 1-based ranks, giving tied values the mean of
// the ranks they span.
func averageRanks(vals []float64) []float64 {
	n := len(vals)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && vals[idx[j+1]] == vals[idx[i]] {
			j++
		}
		// Positions i..j hold the same value; average their ranks.
		avg := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / (math.Sqrt(varX) * math.Sqrt(varY))
}
