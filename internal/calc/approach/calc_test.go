package approach

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCalculate(t *testing.T) {
	Convey("Given a 20\" standing jump and a 30\" approach jump", t, func() {
		res := Calculate(Input{StandingJumpIn: 20, ApproachJumpIn: 30, DominantLeg: "left", ExperienceLevel: "advanced", Sport: "basketball"})

		Convey("Then the advantage is 10\" and a 50% increase", func() {
			So(res.ApproachAdvantageIn, ShouldEqual, 10)
			So(res.PercentageIncrease, ShouldEqual, 50)
		})

		Convey("And the athlete reads as a one-foot, elastic jumper", func() {
			So(res.JumpingStyle, ShouldEqual, "One-Foot Jumper")
			So(res.StrengthProfile, ShouldEqual, "Elastic/Reactive-Dominant")
			So(res.OptimalStyle, ShouldContainSubstring, "one foot")
		})

		Convey("And the recommendations name the dominant leg", func() {
			So(res.Recommendations, ShouldHaveLength, 2)
			So(res.Recommendations[0], ShouldContainSubstring, "your left leg")
			So(res.TrainingFocus, ShouldHaveLength, 1)
		})

		Convey("And the chart draws the approach jump", func() {
			So(res.JumpHeight(), ShouldEqual, 30)
		})
	})

	Convey("Given an increase of exactly 30%", t, func() {
		res := Calculate(Input{StandingJumpIn: 20, ApproachJumpIn: 26, DominantLeg: "both", ExperienceLevel: "elite", Sport: "volleyball"})

		Convey("Then it falls into the >=30 style tier", func() {
			So(res.PercentageIncrease, ShouldEqual, 30)
			So(res.JumpingStyle, ShouldEqual, "One-Foot Jumper")
			So(res.StrengthProfile, ShouldEqual, "Balanced")
		})

		Convey("And volleyball's lower threshold recommends the full approach", func() {
			So(res.OptimalStyle, ShouldContainSubstring, "approach on attacks")
		})
	})

	Convey("Given an increase of exactly 15%", t, func() {
		res := Calculate(Input{StandingJumpIn: 20, ApproachJumpIn: 23, DominantLeg: "right", ExperienceLevel: "beginner", Sport: "other"})

		Convey("Then it falls into the middle style tier", func() {
			So(res.PercentageIncrease, ShouldEqual, 15)
			So(res.JumpingStyle, ShouldEqual, "Balanced Jumper")
			So(res.StrengthProfile, ShouldEqual, "Strength-Dominant")
			So(res.OptimalStyle, ShouldContainSubstring, "stationary")
		})

		Convey("And a small advantage adds approach-technique work", func() {
			So(res.Recommendations, ShouldContain, "Film your approach; a gain under 6\" usually points to a technique leak")
			So(res.TrainingFocus, ShouldContain, "Approach mechanics: penultimate step, arm swing, plant angle")
			So(res.Recommendations, ShouldContain, "Master landing mechanics before adding high-volume plyometrics")
		})
	})

	Convey("Given a basketball player exactly on the 25% threshold", t, func() {
		res := Calculate(Input{StandingJumpIn: 20, ApproachJumpIn: 25, DominantLeg: "right", ExperienceLevel: "advanced", Sport: "basketball"})
		So(res.PercentageIncrease, ShouldEqual, 25)
		So(res.OptimalStyle, ShouldContainSubstring, "two-foot")
	})

	Convey("Given a weak standing jump both lists add strength work", t, func() {
		res := Calculate(Input{StandingJumpIn: 15, ApproachJumpIn: 25, DominantLeg: "right", ExperienceLevel: "intermediate", Sport: "other"})
		So(res.Recommendations, ShouldContain, "Build base lower-body strength; your standing jump limits your ceiling")
		So(res.TrainingFocus, ShouldContain, "Posterior chain strength: hip thrusts, Romanian deadlifts")
	})

	Convey("Calculate is deterministic", t, func() {
		in := Input{StandingJumpIn: 22, ApproachJumpIn: 27, DominantLeg: "left", ExperienceLevel: "beginner", Sport: "basketball"}
		So(Calculate(in), ShouldResemble, Calculate(in))
	})
}

func TestPercentageIncrease(t *testing.T) {
	cases := []struct {
		standing, approach, want float64
	}{
		{20, 30, 50},
		{20, 23, 15},
		{30, 30, 0},
		{0, 10, 0},
		{24, 20, -16.67},
	}
	for _, c := range cases {
		if got := PercentageIncrease(c.standing, c.approach); got != c.want {
			t.Errorf("PercentageIncrease(%v, %v) = %v, want %v", c.standing, c.approach, got, c.want)
		}
	}
}

func TestValidate(t *testing.T) {
	Convey("Given an approach jump below the standing jump", t, func() {
		warnings, err := Input{StandingJumpIn: 24, ApproachJumpIn: 20, DominantLeg: "left", ExperienceLevel: "beginner", Sport: "other"}.Validate()
		So(err, ShouldBeNil)
		So(len(warnings), ShouldEqual, 1)
	})

	Convey("Given an unknown dominant leg", t, func() {
		_, err := Input{StandingJumpIn: 24, ApproachJumpIn: 30, DominantLeg: "tail", ExperienceLevel: "beginner", Sport: "other"}.Validate()
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "dominant_leg")
	})
}
