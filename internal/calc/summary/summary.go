// Package summary defines the labelled lines used when a calculation is
// rendered outside JSON (PDF reports, spreadsheets).
package summary

import (
	"strconv"
	"strings"
)

// Row is one labelled line of a calculation summary.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Rower is implemented by calculator inputs and results.
type Rower interface {
	Rows() []Row
}

// Num formats v with the given precision and an optional unit suffix.
func Num(label string, v float64, places int, unit string) Row {
	s := strconv.FormatFloat(v, 'f', places, 64)
	if unit != "" {
		s += " " + unit
	}
	return Row{Label: label, Value: s}
}

// Int formats an integer value with an optional unit suffix.
func Int(label string, v int, unit string) Row {
	s := strconv.Itoa(v)
	if unit != "" {
		s += " " + unit
	}
	return Row{Label: label, Value: s}
}

// Text is a plain string row.
func Text(label, v string) Row {
	return Row{Label: label, Value: v}
}

// Bool renders yes/no.
func Bool(label string, v bool) Row {
	if v {
		return Row{Label: label, Value: "yes"}
	}
	return Row{Label: label, Value: "no"}
}

// List joins items with "; ". Empty lists render as "-".
func List(label string, items []string) Row {
	if len(items) == 0 {
		return Row{Label: label, Value: "-"}
	}
	return Row{Label: label, Value: strings.Join(items, "; ")}
}

// OptionalNum renders "-" for zero (not supplied) values.
func OptionalNum(label string, v float64, places int, unit string) Row {
	if v == 0 {
		return Row{Label: label, Value: "-"}
	}
	return Num(label, v, places, unit)
}
