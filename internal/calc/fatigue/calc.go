// Package fatigue compares a fresh jump with a jump taken after activity to
// estimate neuromuscular fatigue and the recovery it calls for.
package fatigue

import (
	"math"

	"Dunklab/internal/calc/kinematics"
	"Dunklab/internal/calc/ladder"
	"Dunklab/internal/calc/summary"
	"Dunklab/internal/calc/validate"
)

const defaultFitness = "intermediate"

type Input struct {
	RestingJumpIn float64 `json:"resting_jump_in"`
	FatigueJumpIn float64 `json:"fatigue_jump_in"`
	ActivityType  string  `json:"activity_type"`
	DurationMin   float64 `json:"duration_min"`
	Intensity     string  `json:"intensity"`
	RestTimeMin   float64 `json:"rest_time_min"`
	BodyWeightLb  float64 `json:"body_weight_lb,omitempty"`
	Age           float64 `json:"age,omitempty"`
	FitnessLevel  string  `json:"fitness_level,omitempty"`
}

type Result struct {
	PerformanceDropPct  float64  `json:"performance_drop_pct"`
	FatigueIndex        float64  `json:"fatigue_index"`
	FatigueLevel        string   `json:"fatigue_level"`
	RecoveryTimeMin     int      `json:"recovery_time_min"`
	FatigueType         string   `json:"fatigue_type"`
	Recommendations     []string `json:"recommendations"`
	TrainingAdjustments []string `json:"training_adjustments"`
	NextTestTime        string   `json:"next_test_time"`
}

type tier struct {
	level       string
	advice      []string
	adjustments []string
	nextTest    string
}

var tiers = ladder.Ladder[tier]{
	ladder.Below(5.0, tier{
		"Minimal Fatigue",
		[]string{"You are fresh; continue with planned explosive work", "Keep hydrating and maintain your warm-up routine"},
		[]string{"No changes needed", "High-intensity jump work is fine"},
		"Retest after your next session",
	}),
	ladder.Below(10.0, tier{
		"Mild Fatigue",
		[]string{"Light fatigue; reduce jump volume slightly", "Take a few extra minutes between explosive sets"},
		[]string{"Cut plyometric volume by about 10-20%", "Keep intensity, extend rest intervals"},
		"Retest in 2-4 hours",
	}),
	ladder.Below(15.0, tier{
		"Moderate Fatigue",
		[]string{"Stop maximal jumping for today", "Prioritise rehydration, carbohydrates and protein", "Use light mobility work and foam rolling"},
		[]string{"Switch to technique or low-impact work", "Cut plyometric volume by 30-50%"},
		"Retest in 12-24 hours",
	}),
	ladder.Below(25.0, tier{
		"High Fatigue",
		[]string{"End high-intensity work and begin recovery", "Aim for 8-9 hours of sleep tonight", "Use active recovery such as walking or easy cycling"},
		[]string{"No plyometrics for 24-48 hours", "Upper-body or mobility sessions only"},
		"Retest in 24-48 hours",
	}),
	ladder.Otherwise(tier{
		"Severe Fatigue",
		[]string{"Stop training and rest completely", "Focus on sleep, nutrition and hydration", "Watch for signs of overtraining or injury"},
		[]string{"Skip lower-body training for 48-72 hours", "Reassess your weekly training load"},
		"Retest in 48-72 hours",
	}),
}

var intensityModifier = map[string]float64{
	"low":      0.7,
	"moderate": 1.0,
	"high":     1.3,
	"maximal":  1.6,
}

var fitnessModifier = map[string]float64{
	"beginner":     1.4,
	"intermediate": 1.0,
	"advanced":     0.8,
	"elite":        0.6,
}

func durationModifier(minutes float64) float64 {
	switch {
	case minutes > 120:
		return 1.2
	case minutes < 30:
		return 0.8
	default:
		return 1.0
	}
}

// PerformanceDrop is the percentage lost from the rested jump.
func PerformanceDrop(resting, fatigued float64) float64 {
	if resting <= 0 {
		return 0
	}
	return (resting - fatigued) / resting * 100
}

// RecoveryTime estimates minutes to recover from a given fatigue index.
func RecoveryTime(index float64, in Input) int {
	fitness := in.FitnessLevel
	if fitness == "" {
		fitness = defaultFitness
	}
	m := index * 0.8
	m *= intensityModifier[in.Intensity]
	m *= durationModifier(in.DurationMin)
	m *= fitnessModifier[fitness]
	return int(math.Round(m))
}

func fatigueType(in Input, index float64) string {
	switch {
	case in.DurationMin < 30 && in.Intensity == "maximal":
		return "Neuromuscular"
	case in.DurationMin > 90:
		return "Metabolic"
	case index > 20:
		return "Combined"
	default:
		return "Mild/General"
	}
}

func Calculate(in Input) Result {
	drop := kinematics.Round(PerformanceDrop(in.RestingJumpIn, in.FatigueJumpIn), 1)
	index := kinematics.Clamp(drop, 0, 100)
	t := tiers.Pick(index)
	recovery := RecoveryTime(index, in)

	recs := append([]string(nil), t.advice...)
	if recovery > 30 {
		recs = append(recs, "Allow at least 30 minutes before any further explosive work")
	}
	if in.Intensity == "maximal" && index > 20 {
		recs = append(recs, "Maximal efforts caused large losses; cap sets and add full rest between reps")
	}
	if in.RestTimeMin < float64(recovery) {
		recs = append(recs, "Your planned rest is shorter than the estimated recovery time")
	}
	if in.Age > 35 {
		recs = append(recs, "Recovery slows with age; add an extra rest day after hard sessions")
	}

	return Result{
		PerformanceDropPct:  drop,
		FatigueIndex:        index,
		FatigueLevel:        t.level,
		RecoveryTimeMin:     recovery,
		FatigueType:         fatigueType(in, index),
		Recommendations:     recs,
		TrainingAdjustments: append([]string(nil), t.adjustments...),
		NextTestTime:        t.nextTest,
	}
}

func (in Input) Validate() ([]string, error) {
	var c validate.Checker
	c.Range("resting_jump_in", in.RestingJumpIn, 5, 60)
	c.Range("fatigue_jump_in", in.FatigueJumpIn, 0, 60)
	c.OneOf("activity_type", in.ActivityType, "game", "practice", "training", "conditioning")
	c.Range("duration_min", in.DurationMin, 1, 300)
	c.OneOf("intensity", in.Intensity, "low", "moderate", "high", "maximal")
	c.Range("rest_time_min", in.RestTimeMin, 0, 1440)
	c.Optional("body_weight_lb", in.BodyWeightLb, 80, 400)
	c.Optional("age", in.Age, 10, 80)
	c.OptionalOneOf("fitness_level", in.FitnessLevel, "beginner", "intermediate", "advanced", "elite")
	if in.FatigueJumpIn > in.RestingJumpIn {
		c.Warn("fatigued jump (%.1f\") is higher than rested jump (%.1f\"); fatigue is recorded as 0", in.FatigueJumpIn, in.RestingJumpIn)
	}
	return c.Result()
}

func (in Input) Rows() []summary.Row {
	fitness := in.FitnessLevel
	if fitness == "" {
		fitness = defaultFitness
	}
	return []summary.Row{
		summary.Num("Rested jump", in.RestingJumpIn, 1, "in"),
		summary.Num("Fatigued jump", in.FatigueJumpIn, 1, "in"),
		summary.Text("Activity", in.ActivityType),
		summary.Num("Duration", in.DurationMin, 0, "min"),
		summary.Text("Intensity", in.Intensity),
		summary.Num("Rest time", in.RestTimeMin, 0, "min"),
		summary.OptionalNum("Body weight", in.BodyWeightLb, 1, "lb"),
		summary.OptionalNum("Age", in.Age, 0, ""),
		summary.Text("Fitness level", fitness),
	}
}

func (r Result) Rows() []summary.Row {
	return []summary.Row{
		summary.Num("Performance drop", r.PerformanceDropPct, 1, "%"),
		summary.Num("Fatigue index", r.FatigueIndex, 1, ""),
		summary.Text("Fatigue level", r.FatigueLevel),
		summary.Int("Recovery time", r.RecoveryTimeMin, "min"),
		summary.Text("Fatigue type", r.FatigueType),
		summary.List("Recommendations", r.Recommendations),
		summary.List("Training adjustments", r.TrainingAdjustments),
		summary.Text("Next test", r.NextTestTime),
	}
}
