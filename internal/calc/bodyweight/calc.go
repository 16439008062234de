// Package bodyweight estimates the body weight at which an athlete jumps
// best and what body-composition change gets them there.
package bodyweight

import (
	"math"

	"Dunklab/internal/calc/kinematics"
	"Dunklab/internal/calc/summary"
	"Dunklab/internal/calc/validate"
)

const (
	lbPerKg      = 2.20462
	kgPerLb      = 0.453592
	metresPerIn  = 0.0254
	robinsonBase = 60.0 // inches; Robinson adds weight per inch above 5'0"
)

type Input struct {
	HeightIn          float64 `json:"height_in"`
	CurrentWeightLb   float64 `json:"current_weight_lb"`
	CurrentVerticalIn float64 `json:"current_vertical_in"`
	BodyFatPct        float64 `json:"body_fat_pct,omitempty"`
	Gender            string  `json:"gender"`
	Age               float64 `json:"age"`
	Sport             string  `json:"sport"`
	TrainingGoal      string  `json:"training_goal"`
	MuscleType        string  `json:"muscle_type"`
}

type Result struct {
	IdealWeightLb         float64  `json:"ideal_weight_lb"`
	WeightChangeLb        float64  `json:"weight_change_lb"`
	BodyFatPct            float64  `json:"body_fat_pct"`
	BodyFatEstimated      bool     `json:"body_fat_estimated"`
	TargetBodyFatPct      float64  `json:"target_body_fat_pct"`
	FatLossNeededLb       float64  `json:"fat_loss_needed_lb"`
	MuscleGainNeededLb    float64  `json:"muscle_gain_needed_lb"`
	ProjectedVerticalIn   float64  `json:"projected_vertical_in"`
	TimeToReachWeeks      int      `json:"time_to_reach_weeks"`
	Recommendations       []string `json:"recommendations"`
	Nutrition             []string `json:"nutrition"`
	TrainingModifications []string `json:"training_modifications"`
	RiskFactors           []string `json:"risk_factors"`
}

type profile struct {
	athleteBMI    float64
	robinsonKg    float64
	robinsonPerIn float64
	targetBodyFat map[string]float64 // by sport
}

var profiles = map[string]profile{
	"male": {
		athleteBMI: 23, robinsonKg: 52, robinsonPerIn: 1.9,
		targetBodyFat: map[string]float64{"basketball": 10, "volleyball": 11, "other": 12},
	},
	"female": {
		athleteBMI: 21, robinsonKg: 49, robinsonPerIn: 1.7,
		targetBodyFat: map[string]float64{"basketball": 18, "volleyball": 19, "other": 20},
	},
}

var (
	sportModifier  = map[string]float64{"basketball": 1.05, "volleyball": 0.98}
	goalModifier   = map[string]float64{"power": 0.95, "endurance": 0.90, "balanced": 1.0}
	muscleModifier = map[string]float64{"lean": 0.92, "average": 1.0, "muscular": 1.08}
)

func profileFor(gender string) profile {
	if p, ok := profiles[gender]; ok {
		return p
	}
	return profiles["male"]
}

func modifier(m map[string]float64, key string) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return 1
}

// IdealWeight averages the athlete-BMI and Robinson estimates and applies
// the sport, goal and muscle-type modifiers.
func IdealWeight(in Input) float64 {
	p := profileFor(in.Gender)
	m := in.HeightIn * metresPerIn
	bmiLb := p.athleteBMI * m * m * lbPerKg
	robinsonLb := (p.robinsonKg + p.robinsonPerIn*(in.HeightIn-robinsonBase)) * lbPerKg
	base := (bmiLb + robinsonLb) / 2
	return base *
		modifier(sportModifier, in.Sport) *
		modifier(goalModifier, in.TrainingGoal) *
		modifier(muscleModifier, in.MuscleType)
}

// EstimateBodyFat uses the Deurenberg adult formula from BMI, age and sex,
// limited to 5-50%.
func EstimateBodyFat(heightIn, weightLb, age float64, gender string) float64 {
	m := heightIn * metresPerIn
	if m <= 0 {
		return 0
	}
	bmi := weightLb * kgPerLb / (m * m)
	sex := 0.0
	if gender == "male" {
		sex = 1
	}
	return kinematics.Clamp(1.2*bmi+0.23*age-10.8*sex-5.4, 5, 50)
}

func Calculate(in Input) Result {
	ideal := kinematics.Round(IdealWeight(in), 1)
	change := kinematics.Round(ideal-in.CurrentWeightLb, 1)

	bf := in.BodyFatPct
	estimated := bf <= 0
	if estimated {
		bf = kinematics.Round(EstimateBodyFat(in.HeightIn, in.CurrentWeightLb, in.Age, in.Gender), 1)
	}
	target := modifier(profileFor(in.Gender).targetBodyFat, in.Sport)

	currentFat := in.CurrentWeightLb * bf / 100
	currentLean := in.CurrentWeightLb - currentFat
	idealFat := ideal * target / 100
	idealLean := ideal - idealFat
	fatLoss := kinematics.Round(kinematics.Floor0(currentFat-idealFat), 1)
	muscleGain := kinematics.Round(kinematics.Floor0(idealLean-currentLean), 1)

	var projected float64
	if ideal > 0 {
		projected = kinematics.Round(in.CurrentVerticalIn*in.CurrentWeightLb/ideal, 1)
	}

	rate := 1.0
	if math.Abs(change) > 20 {
		rate = 1.5
	}

	res := Result{
		IdealWeightLb:       ideal,
		WeightChangeLb:      change,
		BodyFatPct:          bf,
		BodyFatEstimated:    estimated,
		TargetBodyFatPct:    target,
		FatLossNeededLb:     fatLoss,
		MuscleGainNeededLb:  muscleGain,
		ProjectedVerticalIn: projected,
		TimeToReachWeeks:    int(math.Round(math.Abs(change) / rate)),
	}
	res.Recommendations = recommendations(change, fatLoss, muscleGain)
	res.Nutrition = nutrition(change, muscleGain)
	res.TrainingModifications = trainingModifications(in, change)
	res.RiskFactors = riskFactors(in, change, target)
	return res
}

func recommendations(change, fatLoss, muscleGain float64) []string {
	var out []string
	switch {
	case change < -5:
		out = append(out, "Reduce body weight gradually to improve your power-to-weight ratio")
	case change > 5:
		out = append(out, "Add lean mass gradually; more muscle will raise your force output")
	default:
		out = append(out, "You are close to your ideal jumping weight; maintain it")
	}
	if fatLoss > 5 {
		out = append(out, "Prioritise fat loss while preserving muscle through strength training")
	}
	if muscleGain > 5 {
		out = append(out, "Follow a hypertrophy block focused on the legs and hips")
	}
	return append(out, "Re-test your vertical every 4 weeks as your weight changes")
}

func nutrition(change, muscleGain float64) []string {
	var out []string
	switch {
	case change < -5:
		out = append(out, "Run a moderate calorie deficit of 300-500 kcal per day", "Keep protein at 1.0 g per lb of body weight")
	case change > 5:
		out = append(out, "Run a modest calorie surplus of 250-400 kcal per day", "Eat protein at every meal, 0.8-1.0 g per lb")
	default:
		out = append(out, "Eat at maintenance calories", "Keep protein at 0.8 g per lb of body weight")
	}
	if muscleGain > 5 {
		out = append(out, "Time carbohydrates around training to fuel hypertrophy work")
	}
	return append(out, "Stay hydrated; even mild dehydration reduces power output")
}

func trainingModifications(in Input, change float64) []string {
	var out []string
	switch in.TrainingGoal {
	case "power":
		out = append(out, "Keep sets low-rep and explosive; avoid excess conditioning volume")
	case "endurance":
		out = append(out, "Balance repeated-jump conditioning with at least two strength sessions a week")
	default:
		out = append(out, "Split the week between strength, power and conditioning")
	}
	if change < -5 {
		out = append(out, "Reduce high-impact plyometric volume until weight comes down")
	}
	if change > 5 {
		out = append(out, "Add accessory volume for the quads, glutes and hamstrings")
	}
	return out
}

func riskFactors(in Input, change, target float64) []string {
	out := []string{}
	if target <= 10 {
		out = append(out, "A very low body-fat target can affect energy and hormone levels; monitor recovery")
	}
	if in.Age < 18 {
		out = append(out, "Still growing: avoid aggressive weight changes and focus on technique")
	}
	if in.Age > 40 {
		out = append(out, "Joint load matters more after 40; progress plyometrics gradually")
	}
	if math.Abs(change) > 30 {
		out = append(out, "A change over 30 lb should be supervised by a health professional")
	}
	return out
}

func (in Input) Validate() ([]string, error) {
	var c validate.Checker
	c.Range("height_in", in.HeightIn, 48, 96)
	c.Range("current_weight_lb", in.CurrentWeightLb, 80, 400)
	c.Range("current_vertical_in", in.CurrentVerticalIn, 1, 60)
	c.Optional("body_fat_pct", in.BodyFatPct, 3, 60)
	c.OneOf("gender", in.Gender, "male", "female")
	c.Range("age", in.Age, 13, 80)
	c.OneOf("sport", in.Sport, "basketball", "volleyball", "other")
	c.OneOf("training_goal", in.TrainingGoal, "power", "endurance", "balanced")
	c.OneOf("muscle_type", in.MuscleType, "lean", "average", "muscular")
	return c.Result()
}

func (in Input) Rows() []summary.Row {
	return []summary.Row{
		summary.Num("Height", in.HeightIn, 1, "in"),
		summary.Num("Current weight", in.CurrentWeightLb, 1, "lb"),
		summary.Num("Current vertical", in.CurrentVerticalIn, 1, "in"),
		summary.OptionalNum("Body fat", in.BodyFatPct, 1, "%"),
		summary.Text("Gender", in.Gender),
		summary.Num("Age", in.Age, 0, ""),
		summary.Text("Sport", in.Sport),
		summary.Text("Training goal", in.TrainingGoal),
		summary.Text("Muscle type", in.MuscleType),
	}
}

func (r Result) Rows() []summary.Row {
	return []summary.Row{
		summary.Num("Ideal weight", r.IdealWeightLb, 1, "lb"),
		summary.Num("Weight change", r.WeightChangeLb, 1, "lb"),
		summary.Num("Body fat", r.BodyFatPct, 1, "%"),
		summary.Bool("Body fat estimated", r.BodyFatEstimated),
		summary.Num("Target body fat", r.TargetBodyFatPct, 0, "%"),
		summary.Num("Fat loss needed", r.FatLossNeededLb, 1, "lb"),
		summary.Num("Muscle gain needed", r.MuscleGainNeededLb, 1, "lb"),
		summary.Num("Projected vertical", r.ProjectedVerticalIn, 1, "in"),
		summary.Int("Time to reach", r.TimeToReachWeeks, "weeks"),
		summary.List("Recommendations", r.Recommendations),
		summary.List("Nutrition", r.Nutrition),
		summary.List("Training modifications", r.TrainingModifications),
		summary.List("Risk factors", r.RiskFactors),
	}
}
