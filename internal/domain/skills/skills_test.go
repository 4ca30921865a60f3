package skills_test

import (
	"testing"

	"github.com/okian/awards/internal/domain/model"
	"github.com/okian/awards/internal/domain/skills"
	. "github.com/smartystreets/goconvey/convey"
)

func run(team int, kind model.SkillKind, score, attempts int) model.RawSkillRun {
	return model.RawSkillRun{TeamID: team, Kind: kind, Score: score, Attempts: attempts}
}

func TestAggregate(t *testing.T) {
	Convey("Given raw skills runs for several teams", t, func() {
		runs := []model.RawSkillRun{
			run(1, model.Programming, 40, 1),
			run(1, model.Programming, 55, 3),
			run(1, model.Driver, 70, 2),
			run(1, model.Driver, 65, 1),
			run(2, model.Driver, 30, 1),
		}
		table := skills.Aggregate(runs)

		Convey("The best run per kind is kept with its own attempts", func() {
			s := table.For(1)
			So(s.ProgrammingScore, ShouldEqual, 55)
			So(s.ProgrammingAttempts, ShouldEqual, 3)
			So(s.DriverScore, ShouldEqual, 70)
			So(s.DriverAttempts, ShouldEqual, 2)
			So(s.CombinedScore, ShouldEqual, 125)
		})

		Convey("A missing kind contributes zero", func() {
			s := table.For(2)
			So(s.ProgrammingScore, ShouldEqual, 0)
			So(s.ProgrammingAttempts, ShouldEqual, 0)
			So(s.CombinedScore, ShouldEqual, 30)
		})

		Convey("A team with no runs gets a zero record", func() {
			s := table.For(99)
			So(s, ShouldResemble, model.TeamSkills{TeamID: 99})
		})
	})

	Convey("Given equal best scores for one kind", t, func() {
		forward := []model.RawSkillRun{
			run(7, model.Programming, 50, 4),
			run(7, model.Programming, 50, 2),
			run(7, model.Programming, 50, 3),
		}
		backward := []model.RawSkillRun{forward[2], forward[1], forward[0]}

		Convey("Fewer attempts wins regardless of input order", func() {
			So(skills.Aggregate(forward).For(7).ProgrammingAttempts, ShouldEqual, 2)
			So(skills.Aggregate(backward).For(7).ProgrammingAttempts, ShouldEqual, 2)
		})
	})

	Convey("Given malformed runs", t, func() {
		runs := []model.RawSkillRun{
			run(3, model.Driver, -10, -1),
			run(3, model.SkillKind(9), 100, 1),
		}
		s := skills.Aggregate(runs).For(3)

		Convey("Negative values clamp to zero and unknown kinds are ignored", func() {
			So(s.DriverScore, ShouldEqual, 0)
			So(s.DriverAttempts, ShouldEqual, 0)
			So(s.CombinedScore, ShouldEqual, 0)
		})
	})

	Convey("Given a streaming fold", t, func() {
		f := skills.NewFold()
		f.Add(run(5, model.Driver, 10, 1))
		first := f.Table().For(5)
		f.Add(run(5, model.Driver, 20, 1))

		Convey("Earlier tables are unaffected by later runs", func() {
			So(first.DriverScore, ShouldEqual, 10)
			So(f.Table().For(5).DriverScore, ShouldEqual, 20)
		})
	})
}
