// Package metrics computes confidence-rating statistics for one group of
// observations: accuracy, mean confidence, bias, and two discrimination
// forms.
//
// Every function is a pure, single-pass reduction. Degenerate inputs (empty
// samples, no contrast in correctness, constant confidence) produce an
// undefined Stat, never an error and never a panic.
package metrics

import (
	"encoding/json"
	"fmt"

	"github.com/okian/metacog/internal/domain/stats"
)

// percentScale converts a 0-1 proportion to the 0-100 scale shared by
// accuracy, confidence and bias.
const percentScale = 100

// Stat is a scalar statistic that may be undefined. The zero value is
// undefined.
type Stat struct {
	value   float64
	defined bool
}

// StatOf wraps a defined value.
func StatOf(v float64) Stat { return Stat{value: v, defined: true} }

// NA returns the undefined sentinel.
func NA() Stat { return Stat{} }

// Defined reports whether the statistic holds a value.
func (s Stat) Defined() bool { return s.defined }

// Float64 returns the value and whether it is defined.
func (s Stat) Float64() (float64, bool) { return s.value, s.defined }

// String renders the value with two decimals, or "NA" when undefined.
func (s Stat) String() string {
	if !s.defined {
		return "NA"
	}
	return fmt.Sprintf("%.2f", s.value)
}

// MarshalJSON encodes an undefined Stat as null.
func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.defined {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON decodes null as the undefined sentinel.
func (s *Stat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NA()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = StatOf(v)
	return nil
}

// Accuracy returns the percentage of correct answers among the non-missing
// correctness flags. Undefined when no flags remain.
func Accuracy(correct []float64) Stat {
	m, ok := stats.Mean(correct)
	if !ok {
		return NA()
	}
	return StatOf(m * percentScale)
}

// Confidence returns the mean of the non-missing confidence ratings.
// Undefined when no ratings remain.
func Confidence(conf []float64) Stat {
	m, ok := stats.Mean(conf)
	if !ok {
		return NA()
	}
	return StatOf(m)
}

// Bias returns confidence minus accuracy, both on the 0-100 scale. Positive
// values indicate overconfidence. An undefined operand propagates.
func Bias(confidence, accuracy Stat) Stat {
	c, ok := confidence.Float64()
	if !ok {
		return NA()
	}
	a, ok := accuracy.Float64()
	if !ok {
		return NA()
	}
	return StatOf(c - a)
}

// Discrimination returns the difference between the mean confidence on
// correct answers and the mean confidence on incorrect answers. Undefined
// when the correctness flags hold fewer than two distinct values over the
// complete cases (no contrast possible).
func Discrimination(correct, conf []float64) Stat {
	cc, cf := stats.CompleteCases(correct, conf)
	if stats.Constant(cc) {
		return NA()
	}
	var hit, miss []float64
	for i, c := range cc {
		if c == 1 {
			hit = append(hit, cf[i])
		} else {
			miss = append(miss, cf[i])
		}
	}
	hm, ok := stats.Mean(hit)
	if !ok {
		return NA()
	}
	mm, ok := stats.Mean(miss)
	if !ok {
		return NA()
	}
	return StatOf(hm - mm)
}

// RankDiscrimination returns the correlation between correctness and
// confidence, Spearman with average-rank ties by default. Undefined when the
// correctness flags hold no contrast or the confidence ratings have zero
// variance over the complete cases.
func RankDiscrimination(correct, conf []float64, opts ...Option) Stat {
	o := newOptions(opts...)
	r, ok := stats.Correlation(correct, conf, o.method)
	if !ok {
		return NA()
	}
	return StatOf(r)
}
