// Package dunk computes how much vertical jump is needed to dunk on a rim of
// a given height and what that jump implies for hang time and power.
package dunk

import (
	"fmt"
	"math"

	"Dunklab/internal/calc/kinematics"
	"Dunklab/internal/calc/ladder"
	"Dunklab/internal/calc/summary"
	"Dunklab/internal/calc/validate"
)

const (
	minEstimatedWeightLb = 120.0
	footPoundsToWatts    = 1.356
)

type Input struct {
	HeightIn        float64 `json:"height_in"`
	StandingReachIn float64 `json:"standing_reach_in"`
	RimHeightIn     float64 `json:"rim_height_in"`
	ClearanceIn     float64 `json:"clearance_in"`
	BodyWeightLb    float64 `json:"body_weight_lb,omitempty"` // optional
}

type Result struct {
	RequiredVerticalIn float64 `json:"required_vertical_in"`
	HangTimeS          float64 `json:"hang_time_s"`
	EstimatedWeightLb  float64 `json:"estimated_weight_lb"`
	WeightEstimated    bool    `json:"weight_estimated"`
	PowerW             int     `json:"power_w"`
	CanDunk            bool    `json:"can_dunk"`
	Assessment         string  `json:"assessment"`
	Timeframe          string  `json:"timeframe"`
}

type outlook struct {
	narrative string // %.1f receives the required vertical
	timeframe string
}

var outlooks = ladder.Ladder[outlook]{
	ladder.AtMost(0.0, outlook{
		"Your standing reach already clears the rim with room to spare. You can dunk with little or no jump; work on timing and ball control.",
		"Ready now",
	}),
	ladder.AtMost(6.0, outlook{
		"You need a %.1f\" vertical jump to dunk. Most athletes reach this with a few weeks of basic jump practice.",
		"1-3 months",
	}),
	ladder.AtMost(12.0, outlook{
		"You need a %.1f\" vertical jump to dunk. That is achievable with consistent plyometric and lower-body strength work.",
		"3-6 months",
	}),
	ladder.AtMost(24.0, outlook{
		"You need a %.1f\" vertical jump to dunk. This is challenging but realistic with a dedicated, structured jump program.",
		"6-12 months",
	}),
	ladder.Otherwise(outlook{
		"You need a %.1f\" vertical jump to dunk. That is an elite-level leap; expect long-term training and consider a lower rim to build up.",
		"12+ months",
	}),
}

// EstimateWeight is the fallback body weight derived from height.
func EstimateWeight(heightIn float64) float64 {
	return math.Max(minEstimatedWeightLb, (heightIn-60)*3+150)
}

// Calculate derives the dunk requirement for in.
func Calculate(in Input) Result {
	required := kinematics.Round(kinematics.Floor0(in.RimHeightIn+in.ClearanceIn-in.StandingReachIn), 1)
	hang := kinematics.HangTime(required)

	weight := in.BodyWeightLb
	estimated := weight <= 0
	if estimated {
		weight = EstimateWeight(in.HeightIn)
	}

	power := 0
	if hang > 0 {
		h := required / 12
		power = int(math.Round(weight * h / (hang / 2) * footPoundsToWatts))
	}

	o := outlooks.Pick(required)
	assessment := o.narrative
	if required > 0 {
		assessment = fmt.Sprintf(o.narrative, required)
	}

	return Result{
		RequiredVerticalIn: required,
		HangTimeS:          kinematics.Round(hang, 3),
		EstimatedWeightLb:  kinematics.Round(weight, 1),
		WeightEstimated:    estimated,
		PowerW:             power,
		CanDunk:            required <= 0,
		Assessment:         assessment,
		Timeframe:          o.timeframe,
	}
}

// JumpHeight is the jump the trajectory chart draws.
func (r Result) JumpHeight() float64 { return r.RequiredVerticalIn }

// Validate range-checks in. A standing reach below height is suspicious
// but not rejected.
func (in Input) Validate() ([]string, error) {
	var c validate.Checker
	c.Range("height_in", in.HeightIn, 48, 96)
	c.Range("standing_reach_in", in.StandingReachIn, 60, 130)
	c.Range("rim_height_in", in.RimHeightIn, 96, 120)
	c.Range("clearance_in", in.ClearanceIn, 2, 12)
	c.Optional("body_weight_lb", in.BodyWeightLb, 80, 400)
	if in.StandingReachIn > 0 && in.StandingReachIn < in.HeightIn {
		c.Warn("standing reach (%.1f\") is less than height (%.1f\"); double-check the measurement", in.StandingReachIn, in.HeightIn)
	}
	return c.Result()
}

func (in Input) Rows() []summary.Row {
	return []summary.Row{
		summary.Num("Height", in.HeightIn, 1, "in"),
		summary.Num("Standing reach", in.StandingReachIn, 1, "in"),
		summary.Num("Rim height", in.RimHeightIn, 1, "in"),
		summary.Num("Clearance", in.ClearanceIn, 1, "in"),
		summary.OptionalNum("Body weight", in.BodyWeightLb, 1, "lb"),
	}
}

func (r Result) Rows() []summary.Row {
	return []summary.Row{
		summary.Num("Required vertical", r.RequiredVerticalIn, 1, "in"),
		summary.Num("Hang time", r.HangTimeS, 3, "s"),
		summary.Num("Body weight used", r.EstimatedWeightLb, 1, "lb"),
		summary.Bool("Weight estimated from height", r.WeightEstimated),
		summary.Int("Takeoff power", r.PowerW, "W"),
		summary.Bool("Can dunk", r.CanDunk),
		summary.Text("Assessment", r.Assessment),
		summary.Text("Timeframe", r.Timeframe),
	}
}
