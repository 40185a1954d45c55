package gendata_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/okian/metacog/internal/adapters/dataset"
	"github.com/okian/metacog/internal/domain/aggregate"
	"github.com/okian/metacog/internal/gendata"
	"github.com/smartystreets/goconvey/convey"
)

func TestGeneratorWrite(t *testing.T) {
	convey.Convey("Given a generator with a fixed seed", t, func() {
		cfg := gendata.Config{Participants: 5, Items: 4, Seed: 7}

		convey.Convey("When generating twice with the same seed", func() {
			var a, b bytes.Buffer
			convey.So(gendata.New(cfg).Write(&a), convey.ShouldBeNil)
			convey.So(gendata.New(cfg).Write(&b), convey.ShouldBeNil)

			convey.Convey("Then the output is deterministic", func() {
				convey.So(a.String(), convey.ShouldEqual, b.String())
			})
		})

		convey.Convey("When generating with different seeds", func() {
			var a, b bytes.Buffer
			convey.So(gendata.New(cfg).Write(&a), convey.ShouldBeNil)
			other := cfg
			other.Seed = 8
			convey.So(gendata.New(other).Write(&b), convey.ShouldBeNil)

			convey.Convey("Then the output differs", func() {
				convey.So(a.String(), convey.ShouldNotEqual, b.String())
			})
		})

		convey.Convey("When loading the generated table back", func() {
			var buf bytes.Buffer
			convey.So(gendata.New(cfg).Write(&buf), convey.ShouldBeNil)

			loader := dataset.NewLoader()
			records, err := loader.Read(context.Background(), &buf)

			convey.Convey("Then it parses under the wide convention", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(records), convey.ShouldEqual, 5)
				convey.So(records[0].Items(), convey.ShouldEqual, 4)
			})

			convey.Convey("Then reshape emits one observation per pair", func() {
				convey.So(err, convey.ShouldBeNil)
				obs, err := dataset.Reshape(records)
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(obs), convey.ShouldEqual, 20)

				rows := aggregate.Metrics(obs, aggregate.ByParticipant)
				convey.So(len(rows), convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When generating with a missing rate", func() {
			var buf bytes.Buffer
			withMissing := cfg
			withMissing.MissingRate = 0.5
			convey.So(gendata.New(withMissing).Write(&buf), convey.ShouldBeNil)

			convey.Convey("Then NA cells appear and the table still parses", func() {
				convey.So(buf.String(), convey.ShouldContainSubstring, "NA")
				_, err := dataset.NewLoader().Read(context.Background(), &buf)
				convey.So(err, convey.ShouldBeNil)
			})
		})

		convey.Convey("When asking for the dataset id", func() {
			g := gendata.New(cfg)

			convey.Convey("Then each generator carries its own id", func() {
				convey.So(g.ID(), convey.ShouldNotEqual, "")
				convey.So(g.ID(), convey.ShouldNotEqual, gendata.New(cfg).ID())
			})
		})
	})
}
