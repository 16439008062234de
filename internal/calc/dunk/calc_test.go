package dunk

import (
	"errors"
	"testing"

	"Dunklab/internal/calc/validate"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCalculate(t *testing.T) {
	Convey("Given a 6'3\" player with a 100\" standing reach on a regulation rim", t, func() {
		in := Input{HeightIn: 75, StandingReachIn: 100, RimHeightIn: 120, ClearanceIn: 6}
		res := Calculate(in)

		Convey("Then the required vertical is the gap to rim plus clearance", func() {
			So(res.RequiredVerticalIn, ShouldEqual, 26)
			So(res.CanDunk, ShouldBeFalse)
		})

		Convey("And hang time follows projectile motion", func() {
			So(res.HangTimeS, ShouldEqual, 0.734)
		})

		Convey("And body weight is estimated from height", func() {
			So(res.WeightEstimated, ShouldBeTrue)
			So(res.EstimatedWeightLb, ShouldEqual, 195)
			So(res.PowerW, ShouldEqual, 1561)
		})

		Convey("And the assessment is the elite tier with the inches interpolated", func() {
			So(res.Assessment, ShouldContainSubstring, "26.0\"")
			So(res.Timeframe, ShouldEqual, "12+ months")
		})
	})

	Convey("Given a standing reach that already clears rim plus clearance", t, func() {
		res := Calculate(Input{HeightIn: 84, StandingReachIn: 126, RimHeightIn: 120, ClearanceIn: 6})

		Convey("Then no jump is needed and every derived quantity is zero", func() {
			So(res.RequiredVerticalIn, ShouldEqual, 0)
			So(res.CanDunk, ShouldBeTrue)
			So(res.HangTimeS, ShouldEqual, 0)
			So(res.PowerW, ShouldEqual, 0)
			So(res.Timeframe, ShouldEqual, "Ready now")
			So(res.Assessment, ShouldNotContainSubstring, "%")
		})
	})

	Convey("Given a reach above the target the requirement is floored at zero", t, func() {
		res := Calculate(Input{HeightIn: 86, StandingReachIn: 130, RimHeightIn: 120, ClearanceIn: 2})
		So(res.RequiredVerticalIn, ShouldEqual, 0)
		So(res.CanDunk, ShouldBeTrue)
	})

	Convey("Given a supplied body weight", t, func() {
		res := Calculate(Input{HeightIn: 70, StandingReachIn: 121, RimHeightIn: 120, ClearanceIn: 4, BodyWeightLb: 180})

		Convey("Then it is used instead of the estimate", func() {
			So(res.WeightEstimated, ShouldBeFalse)
			So(res.EstimatedWeightLb, ShouldEqual, 180)
			So(res.RequiredVerticalIn, ShouldEqual, 3)
		})
	})

	Convey("Given a short player the estimated weight is floored at 120 lb", t, func() {
		So(EstimateWeight(60), ShouldEqual, 150)
		So(EstimateWeight(48), ShouldEqual, 120)
	})

	Convey("Assessment tiers use inclusive upper bounds", t, func() {
		base := Input{HeightIn: 72, RimHeightIn: 120, ClearanceIn: 6}
		cases := []struct {
			reach     float64
			timeframe string
		}{
			{120, "1-3 months"},   // 6
			{119.9, "3-6 months"}, // 6.1
			{114, "3-6 months"},   // 12
			{102, "6-12 months"},  // 24
			{101.9, "12+ months"}, // 24.1
		}
		for _, c := range cases {
			in := base
			in.StandingReachIn = c.reach
			So(Calculate(in).Timeframe, ShouldEqual, c.timeframe)
		}
	})

	Convey("Calculate is deterministic", t, func() {
		in := Input{HeightIn: 73, StandingReachIn: 96, RimHeightIn: 120, ClearanceIn: 6, BodyWeightLb: 190}
		So(Calculate(in), ShouldResemble, Calculate(in))
	})

	Convey("Hang time is zero exactly when the required vertical is zero", t, func() {
		for reach := 100.0; reach <= 130; reach += 0.5 {
			res := Calculate(Input{HeightIn: 75, StandingReachIn: reach, RimHeightIn: 120, ClearanceIn: 6})
			So(res.RequiredVerticalIn >= 0, ShouldBeTrue)
			So(res.HangTimeS == 0, ShouldEqual, res.RequiredVerticalIn == 0)
			So(res.CanDunk, ShouldEqual, res.RequiredVerticalIn == 0)
		}
	})
}

func TestValidate(t *testing.T) {
	Convey("Given valid input", t, func() {
		warnings, err := Input{HeightIn: 75, StandingReachIn: 100, RimHeightIn: 120, ClearanceIn: 6}.Validate()
		So(err, ShouldBeNil)
		So(warnings, ShouldBeEmpty)
	})

	Convey("Given a standing reach below height", t, func() {
		warnings, err := Input{HeightIn: 75, StandingReachIn: 70, RimHeightIn: 120, ClearanceIn: 6}.Validate()

		Convey("Then a warning is raised without blocking", func() {
			So(err, ShouldBeNil)
			So(len(warnings), ShouldEqual, 1)
		})
	})

	Convey("Given a clearance outside 2-12", t, func() {
		_, err := Input{HeightIn: 75, StandingReachIn: 100, RimHeightIn: 120, ClearanceIn: -1}.Validate()
		So(errors.Is(err, validate.ErrInvalidInput), ShouldBeTrue)
	})
}
