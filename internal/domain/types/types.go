// Package types contains common types used across the application
package types

import "github.com/okian/metacog/internal/domain/metrics"

// MetricsRow holds the computed confidence metrics for one group key
// (a participant id or an item id).
type MetricsRow struct {
	Key                string       `json:"key"`
	N                  int          `json:"n"`
	Accuracy           metrics.Stat `json:"accuracy"`
	Confidence         metrics.Stat `json:"confidence"`
	Bias               metrics.Stat `json:"bias"`
	Discrimination     metrics.Stat `json:"discrimination"`
	RankDiscrimination metrics.Stat `json:"rank_discrimination"`
}
