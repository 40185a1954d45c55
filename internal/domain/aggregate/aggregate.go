// Package aggregate implements the group-apply idiom: partition long-format
// observations by a key, reduce each group with the metric functions, and
// assemble one row per distinct key.
package aggregate

import (
	"sort"

	"github.com/okian/metacog/internal/domain/metrics"
	"github.com/okian/metacog/internal/domain/model"
	"github.com/okian/metacog/internal/domain/types"
)

// KeyFunc extracts the grouping key from an observation.
type KeyFunc func(model.Observation) string

// ByParticipant groups observations by participant id.
func ByParticipant(o model.Observation) string { return o.Participant }

// ByItem groups observations by item id.
func ByItem(o model.Observation) string { return o.Item }

// GroupBy partitions observations by key. Within each group the input order
// is preserved; no observation is dropped or duplicated.
func GroupBy(obs []model.Observation, key KeyFunc) map[string][]model.Observation {
	groups := make(map[string][]model.Observation)
	for _, o := range obs {
		k := key(o)
		groups[k] = append(groups[k], o)
	}
	return groups
}

// Keys returns the group keys in sorted order.
func Keys(groups map[string][]model.Observation) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Metrics computes one MetricsRow per distinct key, key-sorted. Consumers
// must join on the key, not the position.
func Metrics(obs []model.Observation, key KeyFunc, opts ...Option) []types.MetricsRow {
	o := newOptions(opts...)
	groups := GroupBy(obs, key)

	rows := make([]types.MetricsRow, 0, len(groups))
	for _, k := range Keys(groups) {
		group := groups[k]
		correct := make([]float64, len(group))
		conf := make([]float64, len(group))
		for i, g := range group {
			correct[i] = g.Correct
			conf[i] = g.Confidence
		}

		accuracy := metrics.Accuracy(correct)
		confidence := metrics.Confidence(conf)
		rows = append(rows, types.MetricsRow{
			Key:                k,
			N:                  len(group),
			Accuracy:           accuracy,
			Confidence:         confidence,
			Bias:               metrics.Bias(confidence, accuracy),
			Discrimination:     metrics.Discrimination(correct, conf),
			RankDiscrimination: metrics.RankDiscrimination(correct, conf, metrics.WithMethod(o.method)),
		})
	}
	return rows
}
