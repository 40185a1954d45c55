// Package gendata generates synthetic wide-format confidence experiment
// datasets with known characteristics, for demos and end-to-end checks.
package gendata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/google/uuid"
)

// Default generation constants.
const (
	defaultParticipants = 20
	defaultItems        = 10
	defaultSeed         = 42
	defaultAccuracy     = 0.7
	defaultGap          = 30.0
	confidenceBase      = 50.0
	confidenceNoise     = 20.0
	outFilePermission   = 0o600
)

// Config controls the shape of the generated dataset.
type Config struct {
	Participants int     // rows of the wide table
	Items        int     // item count K (columns a1..aK, c1..cK, d1..dK, t1..tK)
	Seed         int64   // deterministic generation seed
	Accuracy     float64 // probability of a correct answer, 0-1
	Gap          float64 // mean confidence gap between correct and incorrect answers
	MissingRate  float64 // probability of an NA confidence cell, 0-1
}

// withDefaults fills zero fields with default values.
func (c Config) withDefaults() Config {
	if c.Participants <= 0 {
		c.Participants = defaultParticipants
	}
	if c.Items <= 0 {
		c.Items = defaultItems
	}
	if c.Seed == 0 {
		c.Seed = defaultSeed
	}
	if c.Accuracy <= 0 || c.Accuracy > 1 {
		c.Accuracy = defaultAccuracy
	}
	if c.Gap <= 0 {
		c.Gap = defaultGap
	}
	return c
}

// Generator produces one synthetic dataset.
type Generator struct {
	cfg Config
	rng *rand.Rand
	id  string
}

// New creates a Generator for the given configuration.
func New(cfg Config) *Generator {
	cfg = cfg.withDefaults()
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)), //nolint:gosec // deterministic seed for reproducible datasets
		id:  uuid.NewString(),
	}
}

// ID returns the identifier of the generated dataset.
func (g *Generator) ID() string { return g.id }

// Write renders the wide CSV table to w.
func (g *Generator) Write(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"id"}
	for _, fam := range []string{"a", "c", "d", "t"} {
		for n := 1; n <= g.cfg.Items; n++ {
			header = append(header, fmt.Sprintf("%s%d", fam, n))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for p := 1; p <= g.cfg.Participants; p++ {
		row := g.participantRow(p)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile renders the dataset to a file at path.
func (g *Generator) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outFilePermission)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // flushed by csv writer before return

	return g.Write(f)
}

func (g *Generator) participantRow(p int) []string {
	correct := make([]string, g.cfg.Items)
	conf := make([]string, g.cfg.Items)
	decision := make([]string, g.cfg.Items)
	rt := make([]string, g.cfg.Items)

	for n := 0; n < g.cfg.Items; n++ {
		hit := g.rng.Float64() < g.cfg.Accuracy
		if hit {
			correct[n] = "1"
		} else {
			correct[n] = "0"
		}

		if g.cfg.MissingRate > 0 && g.rng.Float64() < g.cfg.MissingRate {
			conf[n] = "NA"
		} else {
			conf[n] = fmt.Sprintf("%d", g.confidence(hit))
		}

		if g.rng.Float64() < 0.5 {
			decision[n] = "old"
		} else {
			decision[n] = "new"
		}
		rt[n] = fmt.Sprintf("%.2f", 0.5+g.rng.Float64()*2.5)
	}

	row := []string{fmt.Sprintf("p%02d", p)}
	row = append(row, correct...)
	row = append(row, conf...)
	row = append(row, decision...)
	row = append(row, rt...)
	return row
}

// confidence draws a rating around the base, shifted up for correct answers
// and down for incorrect ones, clamped to the 0-100 scale.
func (g *Generator) confidence(correct bool) int {
	shift := g.cfg.Gap / 2
	if !correct {
		shift = -shift
	}
	v := confidenceBase + shift + (g.rng.Float64()*2-1)*confidenceNoise
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return int(v + 0.5)
}
