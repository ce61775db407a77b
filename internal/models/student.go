package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
)

// Student is one row of the student store. Course, Grade and Marks are optional.
type Student struct {
	User
	Course string
	Grade  string
	Marks  *int
}

// StudentPatch is a partial update: empty strings and a nil Marks keep the
// stored values.
type StudentPatch struct {
	UserPatch
	Course string
	Grade  string
	Marks  *int
}

func (p StudentPatch) Apply(s Student) Student {
	s.User = p.UserPatch.apply(s.User)
	s.Course = keep(s.Course, p.Course)
	s.Grade = keep(s.Grade, p.Grade)
	if p.Marks != nil {
		m := *p.Marks
		s.Marks = &m
	}
	return s
}

// ParseMarks converts user or file text to marks; blank means no marks.
func ParseMarks(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: marks %q is not a whole number", common.ErrorInvalidInput, s)
	}
	return &n, nil
}

// FormatMarks is the inverse of ParseMarks.
func FormatMarks(m *int) string {
	if m == nil {
		return ""
	}
	return strconv.Itoa(*m)
}
