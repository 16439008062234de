// Package reach estimates standing reach from body proportions, or checks a
// measured reach against that estimate.
package reach

import (
	"fmt"
	"math"

	"Dunklab/internal/calc/kinematics"
	"Dunklab/internal/calc/ladder"
	"Dunklab/internal/calc/summary"
	"Dunklab/internal/calc/validate"
)

type Mode string

const (
	ModeEstimate Mode = "estimate"
	ModeVerify   Mode = "verify"
)

const (
	StandardRimIn   = 120.0
	MinClearanceIn  = 6.0
	RequiredReachIn = StandardRimIn + MinClearanceIn

	armSpanFactor = 0.98
)

type Input struct {
	Mode           Mode    `json:"mode"`
	HeightIn       float64 `json:"height_in"`
	Gender         string  `json:"gender"`
	Sport          string  `json:"sport"`
	ArmSpanIn      float64 `json:"arm_span_in,omitempty"`
	CurrentReachIn float64 `json:"current_reach_in,omitempty"`
}

type Result struct {
	Mode               Mode    `json:"mode"`
	EstimatedReachIn   float64 `json:"estimated_reach_in"`
	ExpectedReachIn    float64 `json:"expected_reach_in"`
	ReachToHeightRatio float64 `json:"reach_to_height_ratio"`
	Comparison         string  `json:"comparison"`
	Accuracy           string  `json:"accuracy,omitempty"`
	DifferenceIn       float64 `json:"difference_in"`
	DunkPotential      string  `json:"dunk_potential"`
	RequiredReachIn    float64 `json:"required_reach_in"`
	ReachDeficitIn     float64 `json:"reach_deficit_in"`
}

var genderRatio = map[string]float64{
	"male":   1.33,
	"female": 1.31,
}

var sportModifier = map[string]float64{
	"basketball": 1.02,
	"volleyball": 1.01,
}

var comparisons = ladder.Ladder[string]{
	ladder.Below(1.25, "Below Average"),
	ladder.Below(1.30, "Average"),
	ladder.Below(1.35, "Above Average"),
	ladder.Below(1.40, "Excellent"),
	ladder.Otherwise("Exceptional"),
}

var accuracies = ladder.Ladder[string]{
	ladder.Below(1.0, "Very accurate: within an inch of the expected reach"),
	ladder.Below(2.0, "Accurate: close to the expected reach"),
	ladder.Below(4.0, "Moderate difference: re-measure to confirm"),
	ladder.Otherwise("Significant difference: check measurement technique"),
}

// %.1f receives the reach deficit.
var deficits = ladder.Ladder[string]{
	ladder.Below(12.0, "You are %.1f\" short of dunk reach. A modest vertical jump will get you there."),
	ladder.Below(24.0, "You are %.1f\" short of dunk reach. Dunking needs a strong vertical and dedicated training."),
	ladder.Otherwise("You are %.1f\" short of dunk reach. Dunking on a regulation rim will be very challenging."),
}

// ExpectedReach is the baseline standing reach for the given body. An arm
// span, when known, overrides the height ratio.
func ExpectedReach(in Input) float64 {
	if in.ArmSpanIn > 0 {
		return in.ArmSpanIn * armSpanFactor
	}
	ratio := genderRatio[in.Gender]
	if ratio == 0 {
		ratio = genderRatio["male"]
	}
	if m, ok := sportModifier[in.Sport]; ok {
		ratio *= m
	}
	return in.HeightIn * ratio
}

func Calculate(in Input) Result {
	expected := kinematics.Round(ExpectedReach(in), 1)

	res := Result{
		Mode:             in.Mode,
		ExpectedReachIn:  expected,
		EstimatedReachIn: expected,
		RequiredReachIn:  RequiredReachIn,
	}
	if in.Mode == ModeVerify {
		res.EstimatedReachIn = in.CurrentReachIn
		res.DifferenceIn = kinematics.Round(in.CurrentReachIn-expected, 1)
		res.Accuracy = accuracies.Pick(math.Abs(res.DifferenceIn))
	}

	if in.HeightIn > 0 {
		res.ReachToHeightRatio = kinematics.Round(res.EstimatedReachIn/in.HeightIn, 3)
	}
	res.Comparison = comparisons.Pick(res.ReachToHeightRatio)

	res.ReachDeficitIn = kinematics.Round(kinematics.Floor0(RequiredReachIn-res.EstimatedReachIn), 1)
	if res.ReachDeficitIn == 0 {
		res.DunkPotential = "You can potentially dunk with minimal vertical jump."
	} else {
		res.DunkPotential = fmt.Sprintf(deficits.Pick(res.ReachDeficitIn), res.ReachDeficitIn)
	}
	return res
}

func (in Input) Validate() ([]string, error) {
	var c validate.Checker
	c.OneOf("mode", string(in.Mode), string(ModeEstimate), string(ModeVerify))
	c.Range("height_in", in.HeightIn, 48, 96)
	c.OneOf("gender", in.Gender, "male", "female")
	c.OneOf("sport", in.Sport, "basketball", "volleyball", "other")
	c.Optional("arm_span_in", in.ArmSpanIn, 48, 110)
	if in.Mode == ModeVerify {
		c.Range("current_reach_in", in.CurrentReachIn, 60, 130)
	}
	if in.ArmSpanIn > 0 && math.Abs(in.ArmSpanIn-in.HeightIn) > 8 {
		c.Warn("arm span (%.1f\") differs from height (%.1f\") by more than 8\"; double-check both", in.ArmSpanIn, in.HeightIn)
	}
	return c.Result()
}

func (in Input) Rows() []summary.Row {
	rows := []summary.Row{
		summary.Text("Mode", string(in.Mode)),
		summary.Num("Height", in.HeightIn, 1, "in"),
		summary.Text("Gender", in.Gender),
		summary.Text("Sport", in.Sport),
		summary.OptionalNum("Arm span", in.ArmSpanIn, 1, "in"),
	}
	if in.Mode == ModeVerify {
		rows = append(rows, summary.Num("Measured reach", in.CurrentReachIn, 1, "in"))
	}
	return rows
}

func (r Result) Rows() []summary.Row {
	rows := []summary.Row{
		summary.Num("Standing reach", r.EstimatedReachIn, 1, "in"),
		summary.Num("Expected reach", r.ExpectedReachIn, 1, "in"),
		summary.Num("Reach to height", r.ReachToHeightRatio, 3, ""),
		summary.Text("Comparison", r.Comparison),
	}
	if r.Mode == ModeVerify {
		rows = append(rows,
			summary.Num("Difference", r.DifferenceIn, 1, "in"),
			summary.Text("Accuracy", r.Accuracy))
	}
	return append(rows,
		summary.Num("Reach deficit", r.ReachDeficitIn, 1, "in"),
		summary.Text("Dunk potential", r.DunkPotential))
}
