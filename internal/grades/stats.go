package grades

import (
	"math"
	"slices"
)

// Scope filters the entries a statistic is computed over.
type Scope struct {
	activity string
	all      bool
}

// All selects every entry.
func All() Scope { return Scope{all: true} }

// ForActivity selects entries recorded for one activity.
func ForActivity(activity string) Scope { return Scope{activity: activity} }

func (s Scope) includes(e Entry) bool {
	return s.all || e.Activity == s.activity
}

func (l *Ledger) scores(scope Scope) []float64 {
	var out []float64
	for _, e := range l.entries {
		if scope.includes(e) {
			out = append(out, e.Score)
		}
	}
	return out
}

// Average is the arithmetic mean over scope, rounded to two decimals. The
// second result is false when no entry is in scope.
func (l *Ledger) Average(scope Scope) (float64, bool) {
	return mean(l.scores(scope))
}

// Median over scope, rounded to two decimals; false when nothing is in scope.
func (l *Ledger) Median(scope Scope) (float64, bool) {
	return median(l.scores(scope))
}

func mean(v []float64) (float64, bool) {
	if len(v) == 0 {
		return 0, false
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return round2(sum / float64(len(v))), true
}

// median averages the two middle values of an even-sized set.
func median(v []float64) (float64, bool) {
	n := len(v)
	if n == 0 {
		return 0, false
	}
	s := slices.Clone(v)
	slices.Sort(s)
	if n%2 == 1 {
		return round2(s[n/2]), true
	}
	return round2((s[n/2-1] + s[n/2]) / 2), true
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
