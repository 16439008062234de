// Package vertical measures a vertical jump by one of three methods and
// ranks it against general-population norms.
package vertical

import (
	"math"

	"Dunklab/internal/calc/kinematics"
	"Dunklab/internal/calc/ladder"
	"Dunklab/internal/calc/summary"
	"Dunklab/internal/calc/validate"
)

// Method selects how the jump was measured.
type Method string

const (
	MethodHangTime    Method = "hangTime"
	MethodReachHeight Method = "reachHeight"
	MethodMeasurement Method = "measurement"
)

type Input struct {
	Method              Method  `json:"method"`
	HangTimeS           float64 `json:"hang_time_s,omitempty"`
	StandingReachIn     float64 `json:"standing_reach_in,omitempty"`
	MaxReachIn          float64 `json:"max_reach_in,omitempty"`
	DirectMeasurementIn float64 `json:"direct_measurement_in,omitempty"`
	BodyWeightLb        float64 `json:"body_weight_lb"`
}

type Result struct {
	Method          Method   `json:"method"`
	VerticalJumpIn  float64  `json:"vertical_jump_in"`
	HangTimeS       float64  `json:"hang_time_s"`
	PercentileRank  string   `json:"percentile_rank"`
	PowerOutputW    int      `json:"power_output_w"`
	Assessment      string   `json:"assessment"`
	Recommendations []string `json:"recommendations"`
}

type band struct {
	percentile      string
	assessment      string
	recommendations []string
}

var bands = ladder.Ladder[band]{
	ladder.Below(16.0, band{
		"Below Average (Bottom 30%)",
		"Your vertical is below average. Foundational strength and basic jump mechanics will bring quick gains.",
		[]string{
			"Build base strength with squats, lunges and glute bridges 2-3 times per week",
			"Practise arm swing and countermovement technique",
			"Start with low-volume plyometrics such as box jumps and jump rope",
		},
	}),
	ladder.Below(20.0, band{
		"Average (30th-50th percentile)",
		"Your vertical is about average. A structured program combining strength and plyometrics will move you up quickly.",
		[]string{
			"Add progressive strength training focused on the posterior chain",
			"Introduce depth jumps and broad jumps twice per week",
			"Improve ankle and hip mobility",
		},
	}),
	ladder.Below(24.0, band{
		"Above Average (50th-70th percentile)",
		"Your vertical is above average. Targeted power work will help you break into the good range.",
		[]string{
			"Train explosive lifts such as jump squats and trap-bar jumps",
			"Use contrast training: heavy lift followed by a plyometric",
			"Track jump height weekly to manage fatigue",
		},
	}),
	ladder.Below(28.0, band{
		"Good (70th-85th percentile)",
		"You have a good vertical. Gains now come from refining power and reactive strength.",
		[]string{
			"Emphasise reactive strength with depth jumps and bounds",
			"Periodise training in strength, power and peaking blocks",
			"Prioritise sleep and recovery between explosive sessions",
		},
	}),
	ladder.Below(32.0, band{
		"Excellent (85th-95th percentile)",
		"Your vertical is excellent. Small, specific improvements will carry the most value.",
		[]string{
			"Fine-tune approach mechanics and penultimate step",
			"Maintain maximal strength while lowering plyometric volume",
			"Work on single-leg power and takeoff stiffness",
		},
	}),
	ladder.Otherwise(band{
		"Elite (Top 5%)",
		"Your vertical is elite. Focus on maintaining power and staying healthy.",
		[]string{
			"Maintain with low-volume, high-intensity sessions",
			"Monitor tendon health and manage total jump load",
			"Keep body composition stable to protect power-to-weight ratio",
		},
	}),
}

// Jump returns the raw jump height for the selected method, floored at zero.
func Jump(in Input) float64 {
	var jump float64
	switch in.Method {
	case MethodHangTime:
		jump = kinematics.JumpFromHangTime(in.HangTimeS)
	case MethodReachHeight:
		jump = in.MaxReachIn - in.StandingReachIn
	case MethodMeasurement:
		jump = in.DirectMeasurementIn
	}
	return kinematics.Floor0(jump)
}

// Calculate measures and ranks the jump described by in.
func Calculate(in Input) Result {
	jump := kinematics.Round(Jump(in), 1)
	b := bands.Pick(jump)

	hang := in.HangTimeS
	if in.Method != MethodHangTime {
		hang = kinematics.HangTime(jump)
	}

	return Result{
		Method:          in.Method,
		VerticalJumpIn:  jump,
		HangTimeS:       kinematics.Round(hang, 3),
		PercentileRank:  b.percentile,
		PowerOutputW:    int(math.Round(in.BodyWeightLb*jump*0.6 + 200)),
		Assessment:      b.assessment,
		Recommendations: append([]string(nil), b.recommendations...),
	}
}

// JumpHeight is the jump the trajectory chart draws.
func (r Result) JumpHeight() float64 { return r.VerticalJumpIn }

// Validate checks only the fields the selected method uses.
func (in Input) Validate() ([]string, error) {
	var c validate.Checker
	c.OneOf("method", string(in.Method), string(MethodHangTime), string(MethodReachHeight), string(MethodMeasurement))
	switch in.Method {
	case MethodHangTime:
		c.Range("hang_time_s", in.HangTimeS, 0.1, 1.5)
	case MethodReachHeight:
		c.Range("standing_reach_in", in.StandingReachIn, 60, 130)
		c.Range("max_reach_in", in.MaxReachIn, 60, 180)
		if in.MaxReachIn > 0 && in.MaxReachIn < in.StandingReachIn {
			c.Warn("max reach (%.1f\") is below standing reach (%.1f\"); the jump is recorded as 0", in.MaxReachIn, in.StandingReachIn)
		}
	case MethodMeasurement:
		c.Range("direct_measurement_in", in.DirectMeasurementIn, 1, 60)
	}
	c.Range("body_weight_lb", in.BodyWeightLb, 80, 400)
	return c.Result()
}

func (in Input) Rows() []summary.Row {
	rows := []summary.Row{summary.Text("Method", string(in.Method))}
	switch in.Method {
	case MethodHangTime:
		rows = append(rows, summary.Num("Hang time", in.HangTimeS, 2, "s"))
	case MethodReachHeight:
		rows = append(rows,
			summary.Num("Standing reach", in.StandingReachIn, 1, "in"),
			summary.Num("Max reach", in.MaxReachIn, 1, "in"))
	case MethodMeasurement:
		rows = append(rows, summary.Num("Measured jump", in.DirectMeasurementIn, 1, "in"))
	}
	return append(rows, summary.Num("Body weight", in.BodyWeightLb, 1, "lb"))
}

func (r Result) Rows() []summary.Row {
	return []summary.Row{
		summary.Num("Vertical jump", r.VerticalJumpIn, 1, "in"),
		summary.Num("Hang time", r.HangTimeS, 3, "s"),
		summary.Text("Percentile rank", r.PercentileRank),
		summary.Int("Power output", r.PowerOutputW, "W"),
		summary.Text("Assessment", r.Assessment),
		summary.List("Recommendations", r.Recommendations),
	}
}
