// Package approach compares a running-approach jump with a standing jump
// and reads the athlete's jumping style and strength profile from the gap.
package approach

import (
	"fmt"

	"Dunklab/internal/calc/kinematics"
	"Dunklab/internal/calc/ladder"
	"Dunklab/internal/calc/summary"
	"Dunklab/internal/calc/validate"
)

type Input struct {
	StandingJumpIn  float64 `json:"standing_jump_in"`
	ApproachJumpIn  float64 `json:"approach_jump_in"`
	DominantLeg     string  `json:"dominant_leg"`
	ExperienceLevel string  `json:"experience_level"`
	Sport           string  `json:"sport"`
}

type Result struct {
	ApproachJumpIn      float64  `json:"approach_jump_in"`
	ApproachAdvantageIn float64  `json:"approach_advantage_in"`
	PercentageIncrease  float64  `json:"percentage_increase"`
	JumpingStyle        string   `json:"jumping_style"`
	StyleDescription    string   `json:"style_description"`
	StrengthProfile     string   `json:"strength_profile"`
	ProfileDescription  string   `json:"profile_description"`
	OptimalStyle        string   `json:"optimal_style"`
	Recommendations     []string `json:"recommendations"`
	TrainingFocus       []string `json:"training_focus"`
}

type label struct {
	name        string
	description string
}

var styles = ladder.Ladder[label]{
	ladder.Below(15.0, label{"Two-Foot Jumper", "You get little extra height from a run-up. Your power comes from a strong, stable two-foot base."}),
	ladder.Below(30.0, label{"Balanced Jumper", "You use the approach well without depending on it. Both takeoff styles are open to you."}),
	ladder.Otherwise(label{"One-Foot Jumper", "You convert horizontal speed into height efficiently. Single-leg, running takeoffs suit you best."}),
}

var profiles = ladder.Ladder[label]{
	ladder.Below(20.0, label{"Strength-Dominant", "Your jump relies on maximal force more than on elastic rebound."}),
	ladder.Below(35.0, label{"Balanced", "Strength and elasticity contribute evenly to your jump."}),
	ladder.Otherwise(label{"Elastic/Reactive-Dominant", "Your tendons store and return energy well; speed into the takeoff pays off."}),
}

// threshold above which the running, one-foot takeoff is the better choice.
var approachThreshold = map[string]float64{
	"basketball": 25,
	"volleyball": 20,
	"other":      25,
}

var sportAdvice = map[string][2]string{
	"basketball": {
		"Attack the rim off one foot in transition; your approach adds significant height.",
		"Favour two-foot power takeoffs in traffic and off a gather step.",
	},
	"volleyball": {
		"Use a full three- or four-step approach on attacks to maximise your spike height.",
		"Shorten your approach and focus on a powerful two-foot block jump.",
	},
	"other": {
		"Build your technique around running takeoffs to use your elastic strength.",
		"Build your technique around stationary, two-foot takeoffs.",
	},
}

// PercentageIncrease is the approach advantage as a percentage of the
// standing jump, rounded to two places. Zero when there is no standing jump.
func PercentageIncrease(standing, approach float64) float64 {
	if standing <= 0 {
		return 0
	}
	return kinematics.Round((approach-standing)/standing*100, 2)
}

func Calculate(in Input) Result {
	adv := kinematics.Round(in.ApproachJumpIn-in.StandingJumpIn, 1)
	pct := PercentageIncrease(in.StandingJumpIn, in.ApproachJumpIn)
	style := styles.Pick(pct)
	profile := profiles.Pick(pct)

	return Result{
		ApproachJumpIn:      in.ApproachJumpIn,
		ApproachAdvantageIn: adv,
		PercentageIncrease:  pct,
		JumpingStyle:        style.name,
		StyleDescription:    style.description,
		StrengthProfile:     profile.name,
		ProfileDescription:  profile.description,
		OptimalStyle:        optimalStyle(in.Sport, pct),
		Recommendations:     recommendations(in, pct, adv),
		TrainingFocus:       trainingFocus(in, pct, adv),
	}
}

func optimalStyle(sport string, pct float64) string {
	advice, ok := sportAdvice[sport]
	if !ok {
		advice = sportAdvice["other"]
	}
	threshold, ok := approachThreshold[sport]
	if !ok {
		threshold = approachThreshold["other"]
	}
	if pct > threshold {
		return advice[0]
	}
	return advice[1]
}

func legPhrase(leg string) string {
	switch leg {
	case "left", "right":
		return fmt.Sprintf("your %s leg", leg)
	default:
		return "either leg"
	}
}

func recommendations(in Input, pct, adv float64) []string {
	var out []string
	switch {
	case pct < 15:
		out = append(out,
			"Practise a 2-3 step approach to learn how to convert speed into height",
			"Work on a faster penultimate step and a quicker plant",
			fmt.Sprintf("Drill single-leg takeoffs off %s", legPhrase(in.DominantLeg)))
	case pct < 30:
		out = append(out,
			"Keep training both standing and approach jumps",
			"Increase approach speed gradually while holding takeoff posture")
	default:
		out = append(out,
			fmt.Sprintf("Take advantage of your approach with running takeoffs off %s", legPhrase(in.DominantLeg)),
			"Add heavy strength work to raise your standing jump baseline")
	}
	if in.StandingJumpIn < 20 {
		out = append(out, "Build base lower-body strength; your standing jump limits your ceiling")
	}
	if adv < 6 {
		out = append(out, "Film your approach; a gain under 6\" usually points to a technique leak")
	}
	if in.ExperienceLevel == "beginner" {
		out = append(out, "Master landing mechanics before adding high-volume plyometrics")
	}
	return out
}

func trainingFocus(in Input, pct, adv float64) []string {
	var out []string
	switch {
	case pct < 20:
		out = append(out, "Reactive strength: depth jumps, pogo hops, bounding")
	case pct < 35:
		out = append(out, "Mixed training: heavy lifts paired with plyometrics")
	default:
		out = append(out, "Maximal strength: squats, trap-bar deadlifts, split squats")
	}
	if in.StandingJumpIn < 20 {
		out = append(out, "Posterior chain strength: hip thrusts, Romanian deadlifts")
	}
	if adv < 6 {
		out = append(out, "Approach mechanics: penultimate step, arm swing, plant angle")
	}
	return out
}

// JumpHeight is the approach jump; the trajectory chart draws it.
func (r Result) JumpHeight() float64 { return r.ApproachJumpIn }

func (in Input) Validate() ([]string, error) {
	var c validate.Checker
	c.Range("standing_jump_in", in.StandingJumpIn, 5, 50)
	c.Range("approach_jump_in", in.ApproachJumpIn, 5, 60)
	c.OneOf("dominant_leg", in.DominantLeg, "left", "right", "both")
	c.OneOf("experience_level", in.ExperienceLevel, "beginner", "intermediate", "advanced", "elite")
	c.OneOf("sport", in.Sport, "basketball", "volleyball", "other")
	if in.ApproachJumpIn > 0 && in.ApproachJumpIn < in.StandingJumpIn {
		c.Warn("approach jump (%.1f\") is lower than standing jump (%.1f\"); check both measurements", in.ApproachJumpIn, in.StandingJumpIn)
	}
	return c.Result()
}

func (in Input) Rows() []summary.Row {
	return []summary.Row{
		summary.Num("Standing jump", in.StandingJumpIn, 1, "in"),
		summary.Num("Approach jump", in.ApproachJumpIn, 1, "in"),
		summary.Text("Dominant leg", in.DominantLeg),
		summary.Text("Experience", in.ExperienceLevel),
		summary.Text("Sport", in.Sport),
	}
}

func (r Result) Rows() []summary.Row {
	return []summary.Row{
		summary.Num("Approach advantage", r.ApproachAdvantageIn, 1, "in"),
		summary.Num("Increase", r.PercentageIncrease, 1, "%"),
		summary.Text("Jumping style", r.JumpingStyle),
		summary.Text("Strength profile", r.StrengthProfile),
		summary.Text("Optimal style", r.OptimalStyle),
		summary.List("Recommendations", r.Recommendations),
		summary.List("Training focus", r.TrainingFocus),
	}
}
