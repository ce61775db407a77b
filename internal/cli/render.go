package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/checkmygrade/internal/grades"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	bannerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	failureColor = color.New(color.FgRed)
)

func banner(w io.Writer, msg string)  { bannerColor.Fprintln(w, msg) }
func success(w io.Writer, msg string) { successColor.Fprintln(w, msg) }
func warn(w io.Writer, msg string)    { warnColor.Fprintln(w, msg) }
func failure(w io.Writer, msg string) { failureColor.Fprintln(w, msg) }

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	return t
}

func renderStudents(w io.Writer, list []models.Student) {
	if len(list) == 0 {
		fmt.Fprintln(w, "(no students)")
		return
	}
	t := newTable(w, "ID", "Email", "First name", "Last name", "Course", "Grade", "Marks")
	for _, s := range list {
		t.Append([]string{s.ID, s.Email, s.FirstName, s.LastName, s.Course, s.Grade, models.FormatMarks(s.Marks)})
	}
	t.Render()
}

func renderProfessors(w io.Writer, list []models.Professor) {
	if len(list) == 0 {
		fmt.Fprintln(w, "(no professors)")
		return
	}
	t := newTable(w, "ID", "Email", "First name", "Last name", "Course", "Rank")
	for _, p := range list {
		t.Append([]string{p.ID, p.Email, p.FirstName, p.LastName, p.CourseID, p.Rank})
	}
	t.Render()
}

func renderCourses(w io.Writer, list []models.Course) {
	if len(list) == 0 {
		fmt.Fprintln(w, "(no courses)")
		return
	}
	t := newTable(w, "ID", "Name", "Credits", "Description")
	for _, c := range list {
		t.Append([]string{c.ID, c.Name, strconv.Itoa(c.Credits), c.Description})
	}
	t.Render()
}

func renderProfessorCourse(w io.Writer, pc models.ProfessorCourse) {
	p := pc.Professor
	fmt.Fprintf(w, "%s (%s) %s\n", p.FullName(), p.Email, p.Rank)
	if pc.Course == nil {
		if p.CourseID == "" {
			fmt.Fprintln(w, "No course assigned")
		} else {
			fmt.Fprintf(w, "Course %s is not in the course list\n", p.CourseID)
		}
		return
	}
	renderCourses(w, []models.Course{*pc.Course})
}

func renderReport(w io.Writer, r grades.Report) {
	if r.Empty {
		banner(w, "=== Grade Report ===")
		fmt.Fprintln(w, "(no records)")
		return
	}
	banner(w, fmt.Sprintf("=== Grade Report (by %s) ===", r.By))
	for _, g := range r.Groups {
		fmt.Fprintf(w, "%s -> avg: %s, med: %s\n", g.Key, formatScore(g.Average), formatScore(g.Median))
		t := newTable(w, "Student", "Course", "Score")
		for _, e := range g.Entries {
			t.Append([]string{e.Subject, e.Activity, formatScore(e.Score)})
		}
		t.Render()
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
