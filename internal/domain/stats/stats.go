// Package stats provides the NaN-tolerant statistical primitives the metric
// functions are built on.
//
// Convention: a missing value is carried as NaN. Reductions exclude missing
// entries; an empty sample after exclusion yields ok=false rather than an
// error or a panic.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Missing returns the missing-value sentinel.
func Missing() float64 { return math.NaN() }

// IsMissing reports whether v is the missing-value sentinel.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// Filter returns the non-missing entries of xs, preserving order.
func Filter(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !IsMissing(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mean computes the arithmetic mean of the non-missing entries of xs.
// ok is false when no entries remain.
func Mean(xs []float64) (float64, bool) {
	f := Filter(xs)
	if len(f) == 0 {
		return 0, false
	}
	return stat.Mean(f, nil), true
}

// CompleteCases returns the pairs of x and y where both entries are present.
// Inputs of unequal length are truncated to the shorter one.
func CompleteCases(x, y []float64) ([]float64, []float64) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	cx := make([]float64, 0, n)
	cy := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if IsMissing(x[i]) || IsMissing(y[i]) {
			continue
		}
		cx = append(cx, x[i])
		cy = append(cy, y[i])
	}
	return cx, cy
}

// Constant reports whether xs holds fewer than two distinct values.
func Constant(xs []float64) bool {
	if len(xs) < 2 {
		return true
	}
	first := xs[0]
	for _, v := range xs[1:] {
		if v != first {
			return false
		}
	}
	return true
}

// Ranks assigns 1-based ranks to xs, ties sharing the mean of the ranks they
// occupy (average-rank tie handling). The input must not contain missing
// values; filter first.
func Ranks(xs []float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		// positions i..j are tied; they share the average rank
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// Method selects the correlation statistic.
type Method int

const (
	// Spearman is the rank correlation: the product-moment correlation of
	// the average-rank transforms of both samples.
	Spearman Method = iota
	// Pearson is the plain product-moment correlation.
	Pearson
)

// String returns the lowercase method name.
func (m Method) String() string {
	switch m {
	case Pearson:
		return "pearson"
	default:
		return "spearman"
	}
}

// ParseMethod maps a method name onto a Method. Case-insensitive.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "spearman", "rank":
		return Spearman, nil
	case "pearson":
		return Pearson, nil
	default:
		return Spearman, fmt.Errorf("unknown correlation method: %s", name)
	}
}

// Correlation computes the correlation between x and y using the selected
// method over the complete cases. ok is false when fewer than two complete
// pairs remain or when either sample is constant.
func Correlation(x, y []float64, m Method) (float64, bool) {
	cx, cy := CompleteCases(x, y)
	if len(cx) < 2 || Constant(cx) || Constant(cy) {
		return 0, false
	}
	if m == Spearman {
		cx = Ranks(cx)
		cy = Ranks(cy)
	}
	r := stat.Correlation(cx, cy, nil)
	if math.IsNaN(r) {
		return 0, false
	}
	return r, true
}
