// Package model contains domain models passed between layers.
package model

import "math"

// Observation is one (participant, item) pair in long format.
// Missing numeric values are carried as NaN; see the stats package for the
// filtering convention. Observations are immutable once reshaped.
type Observation struct {
	Participant string  // participant identifier (opaque key)
	Item        string  // item identifier (opaque key)
	Correct     float64 // 1 correct, 0 incorrect, NaN missing
	Confidence  float64 // self-reported certainty, 0-100, NaN missing
	Decision    string  // categorical decision, unused by the metrics
	RT          float64 // response time, unused by the metrics
}

// HasCorrect reports whether the correctness flag is present.
func (o Observation) HasCorrect() bool { return !math.IsNaN(o.Correct) }

// HasConfidence reports whether the confidence rating is present.
func (o Observation) HasConfidence() bool { return !math.IsNaN(o.Confidence) }

// WideRecord is one row of the wide-format source table: one participant with
// parallel per-item slices. Slice n holds the value for item n+1.
type WideRecord struct {
	Participant string
	Correct     []float64
	Confidence  []float64
	Decision    []string
	RT          []float64
}

// Items returns the number of items carried by the record.
func (r WideRecord) Items() int { return len(r.Correct) }
