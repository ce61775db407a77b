package grades

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
)

// GroupBy selects the report partition key.
type GroupBy string

const (
	BySubject  GroupBy = "subject"
	ByActivity GroupBy = "activity"
)

// ParseGroupBy accepts subject, student or student_id for BySubject and
// activity or course for ByActivity.
func ParseGroupBy(s string) (GroupBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "subject", "student", "student_id":
		return BySubject, nil
	case "activity", "course":
		return ByActivity, nil
	default:
		return "", fmt.Errorf("%w: cannot group grades by %q", common.ErrorInvalidInput, s)
	}
}

func (g GroupBy) key(e Entry) string {
	if g == ByActivity {
		return e.Activity
	}
	return e.Subject
}

type Group struct {
	Key     string
	Average float64
	Median  float64
	Entries []Entry
}

// Report is a fully ordered snapshot. Empty is set when the ledger held no
// entries, in which case Groups is nil.
type Report struct {
	By     GroupBy
	Empty  bool
	Groups []Group
}

// Report partitions the ledger by the chosen key. Groups are ordered by key
// ignoring case, ties broken by the key itself; entries within a group by
// subject then activity, both ignoring case.
func (l *Ledger) Report(by GroupBy) Report {
	if len(l.entries) == 0 {
		return Report{By: by, Empty: true}
	}

	index := map[string]int{}
	var groups []Group
	for _, e := range l.entries {
		k := by.key(e)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	for i := range groups {
		g := &groups[i]
		slices.SortStableFunc(g.Entries, func(a, b Entry) int {
			if c := strings.Compare(strings.ToLower(a.Subject), strings.ToLower(b.Subject)); c != 0 {
				return c
			}
			return strings.Compare(strings.ToLower(a.Activity), strings.ToLower(b.Activity))
		})
		scores := make([]float64, len(g.Entries))
		for j, e := range g.Entries {
			scores[j] = e.Score
		}
		g.Average, _ = mean(scores)
		g.Median, _ = median(scores)
	}

	slices.SortFunc(groups, func(a, b Group) int {
		if c := strings.Compare(strings.ToLower(a.Key), strings.ToLower(b.Key)); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})
	return Report{By: by, Groups: groups}
}
