package grades

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
)

// Entry is one recorded score. Subject is usually a student id and Activity a
// course id. Entries are not unique.
type Entry struct {
	Subject  string
	Activity string
	Score    float64
}

func (e Entry) matches(subject, activity string) bool {
	return e.Subject == subject && e.Activity == activity
}

// Ledger is not safe for concurrent use.
type Ledger struct {
	entries []Entry
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends an entry. Repeated (subject, activity) pairs coexist.
func (l *Ledger) Add(subject, activity string, score float64) {
	l.entries = append(l.entries, Entry{Subject: subject, Activity: activity, Score: score})
}

// Remove deletes every entry for the pair and returns how many went.
func (l *Ledger) Remove(subject, activity string) int {
	before := len(l.entries)
	l.entries = slices.DeleteFunc(l.entries, func(e Entry) bool { return e.matches(subject, activity) })
	return before - len(l.entries)
}

// Modify overwrites the score of the first entry for the pair only.
func (l *Ledger) Modify(subject, activity string, score float64) error {
	i := slices.IndexFunc(l.entries, func(e Entry) bool { return e.matches(subject, activity) })
	if i < 0 {
		return fmt.Errorf("%w: grade %s - %s", common.ErrorNotFound, subject, activity)
	}
	l.entries[i].Score = score
	return nil
}

// Entries returns a copy in insertion order.
func (l *Ledger) Entries() []Entry {
	return slices.Clone(l.entries)
}

func (l *Ledger) Len() int { return len(l.entries) }

// ParseScore converts user text to a score. NaN and infinities are rejected.
func ParseScore(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: score %q is not a number", common.ErrorInvalidInput, s)
	}
	return v, nil
}
