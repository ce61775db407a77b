package cli

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/checkmygrade/internal/grades"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, grades.NewLedger().Report(grades.BySubject))
	assert.Equal(t, "=== Grade Report ===\n(no records)\n", buf.String())
}

func TestRenderReport_Groups(t *testing.T) {
	l := grades.NewLedger()
	l.Add("S1", "DATA200", 80)
	l.Add("S1", "CS101", 91.5)
	l.Add("S2", "DATA200", 70)

	var buf bytes.Buffer
	renderReport(&buf, l.Report(grades.BySubject))
	out := buf.String()

	assert.Contains(t, out, "=== Grade Report (by subject) ===")
	assert.Contains(t, out, "S1 -> avg: 85.75, med: 85.75")
	assert.Contains(t, out, "S2 -> avg: 70, med: 70")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("CS101")), bytes.Index(buf.Bytes(), []byte("S2 ->")))
}

func TestRenderStudents(t *testing.T) {
	var buf bytes.Buffer
	renderStudents(&buf, nil)
	assert.Equal(t, "(no students)\n", buf.String())

	buf.Reset()
	m := 77
	renderStudents(&buf, []models.Student{{User: models.User{ID: "1", Email: "a@x.edu"}, Marks: &m}})
	assert.Contains(t, buf.String(), "a@x.edu")
	assert.Contains(t, buf.String(), "77")
	assert.Contains(t, buf.String(), "First name")
}

func TestRenderProfessorCourse(t *testing.T) {
	p := models.Professor{User: models.User{ID: "P1", Email: "p@x.edu", FirstName: "Grace", LastName: "Hopper"}}

	var buf bytes.Buffer
	renderProfessorCourse(&buf, models.ProfessorCourse{Professor: p})
	assert.Contains(t, buf.String(), "No course assigned")

	buf.Reset()
	p.CourseID = "C9"
	renderProfessorCourse(&buf, models.ProfessorCourse{Professor: p})
	assert.Contains(t, buf.String(), "Course C9 is not in the course list")

	buf.Reset()
	renderProfessorCourse(&buf, models.ProfessorCourse{Professor: p, Course: &models.Course{ID: "C9", Name: "Compilers", Credits: 4}})
	assert.Contains(t, buf.String(), "Grace Hopper")
	assert.Contains(t, buf.String(), "Compilers")
}
