package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/grades"
)

func (a *App) gradeReport(ctx context.Context, args []string) error {
	by, err := a.argOrAsk(args, 0, "Group by (student|course)")
	if err != nil {
		return err
	}
	if strings.TrimSpace(by) == "" {
		by = string(grades.BySubject)
	}
	g, err := grades.ParseGroupBy(by)
	if err != nil {
		return err
	}
	renderReport(a.out, a.ledger.Report(g))
	return nil
}

// askGrade reads the student and course ids that identify ledger entries.
func (a *App) askGrade() (student, course string, err error) {
	err = a.askEach(
		field{"Student id", &student},
		field{"Course id", &course},
	)
	return student, course, err
}

func (a *App) askScore(prompt string) (float64, error) {
	s, err := a.ask(prompt)
	if err != nil {
		return 0, err
	}
	return grades.ParseScore(s)
}

func (a *App) addGrade(ctx context.Context, _ []string) error {
	student, course, err := a.askGrade()
	if err != nil {
		return err
	}
	score, err := a.askScore("Score")
	if err != nil {
		return err
	}
	a.ledger.Add(student, course, score)
	a.log.Info(ctx, "grade added", "student_id", student, "course_id", course)
	success(a.out, "Grade added")
	return nil
}

func (a *App) removeGrade(ctx context.Context, _ []string) error {
	student, course, err := a.askGrade()
	if err != nil {
		return err
	}
	n := a.ledger.Remove(student, course)
	a.log.Info(ctx, "grades removed", "student_id", student, "course_id", course, "count", n)
	if n == 0 {
		fmt.Fprintln(a.out, "No matching grades")
		return nil
	}
	success(a.out, fmt.Sprintf("Removed %d grade(s)", n))
	return nil
}

func (a *App) modifyGrade(ctx context.Context, _ []string) error {
	student, course, err := a.askGrade()
	if err != nil {
		return err
	}
	score, err := a.askScore("New score")
	if err != nil {
		return err
	}
	if err := a.ledger.Modify(student, course, score); err != nil {
		return err
	}
	a.log.Info(ctx, "grade modified", "student_id", student, "course_id", course)
	success(a.out, "Grade modified")
	return nil
}

func (a *App) gradeStats(ctx context.Context, args []string) error {
	course, err := a.argOrAsk(args, 0, "Course id (blank for all)")
	if err != nil {
		return err
	}

	scope, label := grades.All(), "all courses"
	if course != "" {
		scope, label = grades.ForActivity(course), course
	}

	avg, ok := a.ledger.Average(scope)
	if !ok {
		fmt.Fprintf(a.out, "No grades for %s\n", label)
		return nil
	}
	med, _ := a.ledger.Median(scope)
	fmt.Fprintf(a.out, "%s: average %s, median %s\n", label, formatScore(avg), formatScore(med))
	return nil
}
