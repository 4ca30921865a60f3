package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/awards/internal/domain/types"
	"github.com/okian/awards/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	var sink bytes.Buffer
	if err := logger.InitWithWriter(&sink, "text"); err != nil {
		panic(err)
	}
}

// Four middle school drone teams; cutoff is max(1, round(4*0.5)) = 2.
const droneEvent = `{
  "program": "ADC",
  "roster": [
    {"id": 1, "number": "11A", "grade": "Middle School", "organization": "North"},
    {"id": 2, "number": "22B", "grade": "Middle School", "organization": "South"},
    {"id": 3, "number": "33C", "grade": "Middle School", "organization": "North"},
    {"id": 4, "number": "44D", "grade": "Middle School", "organization": "East"}
  ],
  "standings": [
    {"team_id": 1, "rank": 1},
    {"team_id": 2, "rank": 2},
    {"team_id": 3, "rank": 3},
    {"team_id": 4, "rank": 4}
  ],
  "skills": [
    {"team_id": 1, "kind": "programming", "score": 50, "attempts": 1},
    {"team_id": 1, "kind": "driver", "score": 80, "attempts": 1},
    {"team_id": 2, "kind": "driver", "score": 90, "attempts": 1},
    {"team_id": 3, "kind": "programming", "score": 10, "attempts": 2},
    {"team_id": 3, "kind": "driver", "score": 20, "attempts": 2}
  ]
}`

func writeEvent(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(stdin string, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	convey.Convey("Given a drone event file", t, func() {
		path := writeEvent(t, droneEvent)

		convey.Convey("When evaluated as JSON", func() {
			out, err := execute("", "eval", "--input", path, "--json")
			convey.So(err, convey.ShouldBeNil)

			var ev types.Evaluation
			convey.So(json.Unmarshal([]byte(out), &ev), convey.ShouldBeNil)

			convey.Convey("Then only the team inside both cutoffs with both scores is eligible", func() {
				convey.So(ev.Program, convey.ShouldEqual, "ADC")
				convey.So(ev.Attending, convey.ShouldEqual, 4)
				convey.So(ev.Eligible, convey.ShouldEqual, 1)
				convey.So(ev.Results[0].Team.ID, convey.ShouldEqual, 1)
				convey.So(ev.Results[0].Eligible, convey.ShouldBeTrue)
				convey.So(ev.Results[0].Qualifying.Cutoff, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When flags override the file", func() {
			out, err := execute("", "eval", "-i", path, "--json", "--eligible-only", "--sort", "team")
			convey.So(err, convey.ShouldBeNil)

			var ev types.Evaluation
			convey.So(json.Unmarshal([]byte(out), &ev), convey.ShouldBeNil)
			convey.So(ev.Sort, convey.ShouldEqual, "team")
			convey.So(ev.Results, convey.ShouldHaveLength, 1)
			convey.So(ev.Attending, convey.ShouldEqual, 4)
		})

		convey.Convey("When the program flag names an unknown program", func() {
			_, err := execute("", "eval", "-i", path, "--program", "chess")
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "failed to evaluate")
		})

		convey.Convey("When rendered as a table", func() {
			out, err := execute("", "eval", "-i", path, "--query", "north")
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the header, matching teams and pools are shown", func() {
				convey.So(out, convey.ShouldContainSubstring, "ADC (combined)")
				convey.So(out, convey.ShouldContainSubstring, "attending 4  eligible 1")
				convey.So(out, convey.ShouldContainSubstring, "11A")
				convey.So(out, convey.ShouldContainSubstring, "33C")
				convey.So(out, convey.ShouldNotContainSubstring, "22B")
				convey.So(out, convey.ShouldContainSubstring, "qualifying_rank")
				convey.So(out, convey.ShouldContainSubstring, "skills_rank")
			})
		})
	})

	convey.Convey("Given input on stdin", t, func() {
		out, err := execute(droneEvent, "eval", "-i", "-", "--grade-split", "--json")
		convey.So(err, convey.ShouldBeNil)

		var ev types.Evaluation
		convey.So(json.Unmarshal([]byte(out), &ev), convey.ShouldBeNil)
		convey.So(ev.GradeSplit, convey.ShouldBeTrue)
	})

	convey.Convey("Given bad input", t, func() {
		convey.Convey("A missing --input is rejected", func() {
			_, err := execute("", "eval")
			convey.So(err, convey.ShouldEqual, errNoInput)
		})

		convey.Convey("A missing file is reported", func() {
			_, err := execute("", "eval", "-i", filepath.Join(t.TempDir(), "nope.json"))
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "failed to open input")
		})

		convey.Convey("Unknown fields and skill kinds are rejected", func() {
			_, err := execute(`{"roster": [], "extra": 1}`, "eval", "-i", "-")
			convey.So(err, convey.ShouldNotBeNil)

			_, err = execute(`{"skills": [{"team_id": 1, "kind": "teamwork", "score": 1}]}`, "eval", "-i", "-")
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "failed to decode input")
		})

		convey.Convey("An empty event prints no teams", func() {
			out, err := execute(`{"program": "V5RC"}`, "eval", "-i", "-")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "no teams")
		})
	})
}

func TestProgramsCommand(t *testing.T) {
	convey.Convey("Given the programs command", t, func() {
		convey.Convey("The table lists every program", func() {
			out, err := execute("", "programs")
			convey.So(err, convey.ShouldBeNil)
			for _, id := range []string{"V5RC", "VIQRC", "VEXU", "VAIRC", "ADC"} {
				convey.So(out, convey.ShouldContainSubstring, id)
			}
			convey.So(out, convey.ShouldContainSubstring, "half_even")
			convey.So(out, convey.ShouldContainSubstring, "prog-only top 40%")
		})

		convey.Convey("JSON output decodes", func() {
			out, err := execute("", "programs", "--json")
			convey.So(err, convey.ShouldBeNil)

			var progs []types.ProgramEntry
			convey.So(json.Unmarshal([]byte(out), &progs), convey.ShouldBeNil)
			convey.So(progs, convey.ShouldHaveLength, 5)
		})
	})
}

func TestFormatting(t *testing.T) {
	convey.Convey("Given rank and score entries", t, func() {
		convey.So(formatRank(types.RankEntry{Rank: -1, Cutoff: 1}), convey.ShouldEqual, "-")
		convey.So(formatRank(types.RankEntry{Rank: 2, Cutoff: 3}), convey.ShouldEqual, "2/3")
		convey.So(formatOptionalRank(nil), convey.ShouldEqual, "")
		convey.So(formatScore(types.ScoreEntry{Score: 7, Attempts: 1}), convey.ShouldEqual, "7")
		convey.So(formatPercent(0.4), convey.ShouldEqual, "40%")
	})
}
