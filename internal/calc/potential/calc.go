// Package potential projects the highest vertical jump an athlete can
// expect to reach, how long it will take and what stands in the way.
package potential

import (
	"fmt"
	"math"

	"Dunklab/internal/calc/kinematics"
	"Dunklab/internal/calc/ladder"
	"Dunklab/internal/calc/summary"
	"Dunklab/internal/calc/validate"
)

const (
	maxGainIn    = 24.0
	minMonths    = 6
	noLimitation = "No major limiting factors identified"
)

type Input struct {
	CurrentVerticalIn  float64 `json:"current_vertical_in"`
	Age                float64 `json:"age"`
	TrainingExperience string  `json:"training_experience"`
	AthleticBackground string  `json:"athletic_background"`
	BodyType           string  `json:"body_type"`
	LegLength          string  `json:"leg_length"`
	FastTwitch         string  `json:"fast_twitch"`
	InjuryHistory      string  `json:"injury_history"`
}

type Phase struct {
	Name           string  `json:"name"`
	Focus          string  `json:"focus"`
	Share          float64 `json:"share"`
	ExpectedGainIn float64 `json:"expected_gain_in"`
	DurationMonths int     `json:"duration_months"`
}

type Result struct {
	CurrentVerticalIn float64  `json:"current_vertical_in"`
	MaxPotentialIn    float64  `json:"max_potential_in"`
	PotentialGainIn   float64  `json:"potential_gain_in"`
	TotalFactor       float64  `json:"total_factor"`
	TimeToReachMonths int      `json:"time_to_reach_months"`
	ConfidenceLevel   string   `json:"confidence_level"`
	LimitingFactors   []string `json:"limiting_factors"`
	TrainingPhases    []Phase  `json:"training_phases"`
}

var ageModifier = ladder.Ladder[float64]{
	ladder.Below(16.0, 1.8),
	ladder.Below(20.0, 1.6),
	ladder.Below(25.0, 1.4),
	ladder.Below(30.0, 1.2),
	ladder.Below(35.0, 1.0),
	ladder.Otherwise(0.8),
}

var (
	experienceModifier = map[string]float64{"none": 2.0, "beginner": 1.6, "intermediate": 1.3, "advanced": 1.05}
	backgroundModifier = map[string]float64{"none": 1.0, "recreational": 1.1, "high_school": 1.2, "college": 1.3, "professional": 1.4}
	bodyTypeModifier   = map[string]float64{"endomorph": 0.9, "average": 1.0, "ectomorph": 1.1, "mesomorph": 1.3}
	legLengthModifier  = map[string]float64{"short": 0.9, "average": 1.0, "long": 1.2}
	fastTwitchModifier = map[string]float64{"low": 0.8, "moderate": 1.0, "high": 1.2, "very_high": 1.4}
	injuryModifier     = map[string]float64{"none": 1.0, "minor": 0.9, "moderate": 0.8, "major": 0.7}

	monthsPerInch = map[string]float64{"none": 1.5, "beginner": 1.5, "intermediate": 2.0, "advanced": 3.0}
)

var confidence = ladder.Ladder[string]{
	ladder.Above(1.8, "Very High"),
	ladder.Above(1.5, "High"),
	ladder.Above(1.2, "Moderate"),
	ladder.Otherwise("Low"),
}

var phasePlan = []Phase{
	{Name: "Foundation", Focus: "General strength, landing mechanics and mobility", Share: 0.30},
	{Name: "Power Development", Focus: "Explosive lifts and progressive plyometrics", Share: 0.40},
	{Name: "Peak Performance", Focus: "Reactive strength, approach technique and peaking", Share: 0.30},
}

// lookup returns m[key], or 1 when the key is unknown.
func lookup(m map[string]float64, key string) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return 1
}

// TotalFactor multiplies every modifier that applies to in.
func TotalFactor(in Input) float64 {
	return ageModifier.Pick(in.Age) *
		lookup(experienceModifier, in.TrainingExperience) *
		lookup(backgroundModifier, in.AthleticBackground) *
		lookup(bodyTypeModifier, in.BodyType) *
		lookup(legLengthModifier, in.LegLength) *
		lookup(fastTwitchModifier, in.FastTwitch) *
		lookup(injuryModifier, in.InjuryHistory)
}

func Calculate(in Input) Result {
	total := kinematics.Round(TotalFactor(in), 3)
	gain := kinematics.Round(kinematics.Clamp(in.CurrentVerticalIn*(total-1), 0, maxGainIn), 1)

	mpi, ok := monthsPerInch[in.TrainingExperience]
	if !ok {
		mpi = monthsPerInch["intermediate"]
	}
	months := int(math.Max(minMonths, math.Round(gain*mpi)))

	return Result{
		CurrentVerticalIn: in.CurrentVerticalIn,
		MaxPotentialIn:    kinematics.Round(in.CurrentVerticalIn+gain, 1),
		PotentialGainIn:   gain,
		TotalFactor:       total,
		TimeToReachMonths: months,
		ConfidenceLevel:   confidence.Pick(total),
		LimitingFactors:   limitingFactors(in),
		TrainingPhases:    phases(gain, months),
	}
}

func limitingFactors(in Input) []string {
	var out []string
	if in.Age >= 30 {
		out = append(out, "Age: adaptation to power training slows after 30")
	}
	if in.InjuryHistory == "moderate" || in.InjuryHistory == "major" {
		out = append(out, "Injury history: progress load carefully and prioritise prehab")
	}
	if in.FastTwitch == "low" {
		out = append(out, "Muscle fibre type: lower fast-twitch dominance caps explosive output")
	}
	if in.BodyType == "endomorph" {
		out = append(out, "Body composition: reducing body fat will improve power-to-weight ratio")
	}
	if in.LegLength == "short" {
		out = append(out, "Leg length: shorter levers reduce takeoff range of motion")
	}
	if in.TrainingExperience == "advanced" {
		out = append(out, "Training age: advanced athletes are closer to their ceiling")
	}
	if len(out) == 0 {
		out = append(out, noLimitation)
	}
	return out
}

// phases splits the gain and the timeline across the fixed three-phase plan.
// The last phase takes the remainder so the phases sum to gain and months.
func phases(gain float64, months int) []Phase {
	out := make([]Phase, len(phasePlan))
	gainLeft, monthsLeft := gain, months
	for i, p := range phasePlan {
		if i == len(phasePlan)-1 {
			p.ExpectedGainIn = kinematics.Round(gainLeft, 1)
			p.DurationMonths = monthsLeft
		} else {
			p.ExpectedGainIn = kinematics.Round(gain*p.Share, 1)
			p.DurationMonths = int(math.Round(float64(months) * p.Share))
			gainLeft -= p.ExpectedGainIn
			monthsLeft -= p.DurationMonths
		}
		out[i] = p
	}
	return out
}

// JumpHeight is the projected maximum; the trajectory chart draws it.
func (r Result) JumpHeight() float64 { return r.MaxPotentialIn }

func (in Input) Validate() ([]string, error) {
	var c validate.Checker
	c.Range("current_vertical_in", in.CurrentVerticalIn, 5, 60)
	c.Range("age", in.Age, 10, 70)
	c.OneOf("training_experience", in.TrainingExperience, "none", "beginner", "intermediate", "advanced")
	c.OneOf("athletic_background", in.AthleticBackground, "none", "recreational", "high_school", "college", "professional")
	c.OneOf("body_type", in.BodyType, "endomorph", "average", "ectomorph", "mesomorph")
	c.OneOf("leg_length", in.LegLength, "short", "average", "long")
	c.OneOf("fast_twitch", in.FastTwitch, "low", "moderate", "high", "very_high")
	c.OneOf("injury_history", in.InjuryHistory, "none", "minor", "moderate", "major")
	return c.Result()
}

func (in Input) Rows() []summary.Row {
	return []summary.Row{
		summary.Num("Current vertical", in.CurrentVerticalIn, 1, "in"),
		summary.Num("Age", in.Age, 0, ""),
		summary.Text("Training experience", in.TrainingExperience),
		summary.Text("Athletic background", in.AthleticBackground),
		summary.Text("Body type", in.BodyType),
		summary.Text("Leg length", in.LegLength),
		summary.Text("Fast-twitch dominance", in.FastTwitch),
		summary.Text("Injury history", in.InjuryHistory),
	}
}

func (r Result) Rows() []summary.Row {
	rows := []summary.Row{
		summary.Num("Max potential", r.MaxPotentialIn, 1, "in"),
		summary.Num("Potential gain", r.PotentialGainIn, 1, "in"),
		summary.Num("Total factor", r.TotalFactor, 3, ""),
		summary.Int("Time to reach", r.TimeToReachMonths, "months"),
		summary.Text("Confidence", r.ConfidenceLevel),
		summary.List("Limiting factors", r.LimitingFactors),
	}
	for _, p := range r.TrainingPhases {
		rows = append(rows, summary.Text(p.Name, fmt.Sprintf("+%.1f in over %d months", p.ExpectedGainIn, p.DurationMonths)))
	}
	return rows
}
