// Package ladder implements ordered classification tables: a continuous
// value is matched against rungs in order and the first match wins.
package ladder

// Rung pairs a predicate over the measured value with the value it selects.
type Rung[T any] struct {
	Match func(v float64) bool
	Value T
}

// Ladder is an ordered list of rungs.
type Ladder[T any] []Rung[T]

// Classify returns the value of the first rung matching v. The boolean is
// false only when no rung matches; ladders ending in Otherwise always match.
func (l Ladder[T]) Classify(v float64) (T, bool) {
	for _, r := range l {
		if r.Match(v) {
			return r.Value, true
		}
	}
	var zero T
	return zero, false
}

// Pick is Classify for ladders known to be exhaustive.
func (l Ladder[T]) Pick(v float64) T {
	out, _ := l.Classify(v)
	return out
}

// Below matches v < limit.
func Below[T any](limit float64, value T) Rung[T] {
	return Rung[T]{Match: func(v float64) bool { return v < limit }, Value: value}
}

// AtMost matches v <= limit.
func AtMost[T any](limit float64, value T) Rung[T] {
	return Rung[T]{Match: func(v float64) bool { return v <= limit }, Value: value}
}

// Above matches v > limit.
func Above[T any](limit float64, value T) Rung[T] {
	return Rung[T]{Match: func(v float64) bool { return v > limit }, Value: value}
}

// Otherwise matches everything; use it as the last rung.
func Otherwise[T any](value T) Rung[T] {
	return Rung[T]{Match: func(float64) bool { return true }, Value: value}
}
