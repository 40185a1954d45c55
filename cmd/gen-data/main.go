// Command gen-data writes a synthetic wide-format confidence experiment
// dataset for demos and end-to-end checks.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/metacog/internal/gendata"
	"github.com/okian/metacog/pkg/logger"
)

func main() {
	var (
		out          = flag.String("out", "confidence.csv", "Output CSV path")
		participants = flag.Int("participants", 20, "Number of participants")
		items        = flag.Int("items", 10, "Number of items")
		seed         = flag.Int64("seed", 42, "Generation seed")
		accuracy     = flag.Float64("accuracy", 0.7, "Probability of a correct answer")
		gap          = flag.Float64("gap", 30, "Mean confidence gap between correct and incorrect answers")
		missing      = flag.Float64("missing", 0, "Probability of an NA confidence cell")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	ctx := context.Background()
	log := logger.Get()

	g := gendata.New(gendata.Config{
		Participants: *participants,
		Items:        *items,
		Seed:         *seed,
		Accuracy:     *accuracy,
		Gap:          *gap,
		MissingRate:  *missing,
	})

	if err := g.WriteFile(*out); err != nil {
		log.Error(ctx, "failed to write dataset", logger.Error(err))
		os.Exit(1)
	}
	log.Info(ctx, "dataset written",
		logger.String("dataset_id", g.ID()),
		logger.String("path", *out),
		logger.Int("participants", *participants),
		logger.Int("items", *items))
}
