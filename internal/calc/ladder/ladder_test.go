package ladder_test

import (
	"testing"

	"Dunklab/internal/calc/ladder"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLadder(t *testing.T) {
	Convey("Given an ascending ladder of strict upper bounds", t, func() {
		l := ladder.Ladder[string]{
			ladder.Below(15.0, "low"),
			ladder.Below(30.0, "mid"),
			ladder.Otherwise("high"),
		}

		Convey("Values below the first bound take the first rung", func() {
			So(l.Pick(0), ShouldEqual, "low")
			So(l.Pick(14.99), ShouldEqual, "low")
		})

		Convey("A value exactly on a bound falls into the next rung", func() {
			So(l.Pick(15), ShouldEqual, "mid")
			So(l.Pick(30), ShouldEqual, "high")
		})
	})

	Convey("Given a ladder of inclusive bounds", t, func() {
		l := ladder.Ladder[int]{
			ladder.AtMost(0.0, 0),
			ladder.AtMost(6.0, 1),
			ladder.Otherwise(2),
		}

		Convey("Inclusive bounds keep the boundary value", func() {
			So(l.Pick(0), ShouldEqual, 0)
			So(l.Pick(6), ShouldEqual, 1)
			So(l.Pick(6.01), ShouldEqual, 2)
		})
	})

	Convey("Given a descending ladder without a fallback", t, func() {
		l := ladder.Ladder[string]{
			ladder.Above(1.8, "very high"),
			ladder.Above(1.5, "high"),
		}

		Convey("First match wins", func() {
			v, ok := l.Classify(2.0)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "very high")
		})

		Convey("No match reports false and the zero value", func() {
			v, ok := l.Classify(1.0)
			So(ok, ShouldBeFalse)
			So(v, ShouldEqual, "")
		})
	})
}
