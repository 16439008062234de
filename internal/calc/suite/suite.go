// Package suite registers the seven calculators behind one slug-keyed
// interface so exports, share links and charts can run any of them from a
// raw JSON body.
package suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"Dunklab/internal/calc/approach"
	"Dunklab/internal/calc/bodyweight"
	"Dunklab/internal/calc/dunk"
	"Dunklab/internal/calc/fatigue"
	"Dunklab/internal/calc/potential"
	"Dunklab/internal/calc/reach"
	"Dunklab/internal/calc/summary"
	"Dunklab/internal/calc/vertical"
	"Dunklab/pkg/metrics"
)

// Outcome is a validated, computed calculation.
type Outcome struct {
	Slug       string
	Title      string
	Input      any
	Result     any
	Warnings   []string
	InputRows  []summary.Row
	ResultRows []summary.Row
}

// Jumper is implemented by results that describe a single jump.
type Jumper interface {
	JumpHeight() float64
}

// JumpHeight returns the jump the outcome describes, if any.
func (o *Outcome) JumpHeight() (float64, bool) {
	j, ok := o.Result.(Jumper)
	if !ok {
		return 0, false
	}
	return j.JumpHeight(), true
}

// Calculator runs one calculator from raw JSON.
type Calculator interface {
	Slug() string
	Title() string
	Run(raw []byte) (*Outcome, error)
}

type input interface {
	summary.Rower
	Validate() ([]string, error)
}

type entry[I input, R summary.Rower] struct {
	slug  string
	title string
	calc  func(I) R
}

func (e entry[I, R]) Slug() string  { return e.slug }
func (e entry[I, R]) Title() string { return e.title }

func (e entry[I, R]) Run(raw []byte) (*Outcome, error) {
	var in I
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	warnings, err := in.Validate()
	if err != nil {
		metrics.RecordCalculation(e.slug, metrics.OutcomeInvalid)
		return nil, err
	}
	start := time.Now()
	res := e.calc(in)
	metrics.ObserveCalculation(e.slug, time.Since(start))
	return &Outcome{
		Slug:       e.slug,
		Title:      e.title,
		Input:      in,
		Result:     res,
		Warnings:   warnings,
		InputRows:  in.Rows(),
		ResultRows: res.Rows(),
	}, nil
}

// Registry maps slugs to calculators in display order.
type Registry struct {
	order  []Calculator
	bySlug map[string]Calculator
}

func register[I input, R summary.Rower](r *Registry, slug, title string, calc func(I) R) {
	e := entry[I, R]{slug: slug, title: title, calc: calc}
	r.order = append(r.order, e)
	r.bySlug[slug] = e
}

// New returns a registry holding every calculator.
func New() *Registry {
	r := &Registry{bySlug: make(map[string]Calculator)}
	register(r, dunk.Slug, "Dunk Calculator", dunk.Calculate)
	register(r, vertical.Slug, "Vertical Jump Calculator", vertical.Calculate)
	register(r, reach.Slug, "Standing Reach Calculator", reach.Calculate)
	register(r, approach.Slug, "Approach vs Standing Jump", approach.Calculate)
	register(r, fatigue.Slug, "Jump Fatigue Calculator", fatigue.Calculate)
	register(r, potential.Slug, "Max Vertical Potential", potential.Calculate)
	register(r, bodyweight.Slug, "Ideal Body Weight for Jumping", bodyweight.Calculate)
	return r
}

func (r *Registry) Get(slug string) (Calculator, error) {
	c, ok := r.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalculator, slug)
	}
	return c, nil
}

func (r *Registry) Slugs() []string {
	out := make([]string, len(r.order))
	for i, c := range r.order {
		out[i] = c.Slug()
	}
	return out
}

// Run decodes, validates and computes raw with the calculator named slug.
func (r *Registry) Run(slug string, raw []byte) (*Outcome, error) {
	c, err := r.Get(slug)
	if err != nil {
		return nil, err
	}
	return c.Run(raw)
}
