package dataset

import (
	"fmt"

	"github.com/okian/metacog/internal/domain/model"
	"github.com/okian/metacog/internal/domain/stats"
)

// Reshape converts wide records into long-format observations, one per
// (participant, item) pair. Every cell of the wide table appears exactly
// once; a repeated pair is an ErrDuplicate.
func Reshape(records []model.WideRecord) ([]model.Observation, error) {
	var obs []model.Observation
	seen := make(map[string]struct{})
	for _, rec := range records {
		for n := 0; n < rec.Items(); n++ {
			item := ItemID(n + 1)
			pair := rec.Participant + "\x00" + item
			if _, dup := seen[pair]; dup {
				return nil, fmt.Errorf("%w: pair (%s, %s)", ErrDuplicate, rec.Participant, item)
			}
			seen[pair] = struct{}{}

			o := model.Observation{
				Participant: rec.Participant,
				Item:        item,
				Correct:     rec.Correct[n],
				Confidence:  rec.Confidence[n],
				RT:          stats.Missing(),
			}
			if n < len(rec.Decision) {
				o.Decision = rec.Decision[n]
			}
			if n < len(rec.RT) {
				o.RT = rec.RT[n]
			}
			obs = append(obs, o)
		}
	}
	return obs, nil
}

// ItemID renders the opaque item key for the 1-based item index n.
func ItemID(n int) string { return fmt.Sprintf("i%d", n) }
