package entity

import (
	"slices"
	"strconv"

	"github.com/dmitrijs2005/checkmygrade/internal/models"
)

var (
	studentHeader   = []string{"student_id", "email_address", "first_name", "last_name", "courses", "grade", "marks"}
	professorHeader = []string{"professor_id", "email_address", "first_name", "last_name", "course_id", "rank"}
	courseHeader    = []string{"course_id", "course_name", "credits", "description"}
)

// StudentCodec lays out models.Student rows.
type StudentCodec struct{}

func (StudentCodec) Name() string     { return "student" }
func (StudentCodec) Header() []string { return slices.Clone(studentHeader) }

func (StudentCodec) Key(s models.Student) string { return s.ID }

func (StudentCodec) Encode(s models.Student) []string {
	return []string{s.ID, s.Email, s.FirstName, s.LastName, s.Course, s.Grade, models.FormatMarks(s.Marks)}
}

func (StudentCodec) Decode(row []string) (models.Student, error) {
	marks, err := models.ParseMarks(row[6])
	if err != nil {
		return models.Student{}, err
	}
	return models.Student{
		User:   models.User{ID: row[0], Email: row[1], FirstName: row[2], LastName: row[3]},
		Course: row[4],
		Grade:  row[5],
		Marks:  marks,
	}, nil
}

// ProfessorCodec lays out models.Professor rows.
type ProfessorCodec struct{}

func (ProfessorCodec) Name() string     { return "professor" }
func (ProfessorCodec) Header() []string { return slices.Clone(professorHeader) }

func (ProfessorCodec) Key(p models.Professor) string { return p.ID }

func (ProfessorCodec) Encode(p models.Professor) []string {
	return []string{p.ID, p.Email, p.FirstName, p.LastName, p.CourseID, p.Rank}
}

func (ProfessorCodec) Decode(row []string) (models.Professor, error) {
	return models.Professor{
		User:     models.User{ID: row[0], Email: row[1], FirstName: row[2], LastName: row[3]},
		CourseID: row[4],
		Rank:     row[5],
	}, nil
}

// CourseCodec lays out models.Course rows.
type CourseCodec struct{}

func (CourseCodec) Name() string     { return "course" }
func (CourseCodec) Header() []string { return slices.Clone(courseHeader) }

func (CourseCodec) Key(c models.Course) string { return c.ID }

func (CourseCodec) Encode(c models.Course) []string {
	return []string{c.ID, c.Name, strconv.Itoa(c.Credits), c.Description}
}

func (CourseCodec) Decode(row []string) (models.Course, error) {
	credits := 0
	if row[2] != "" {
		n, err := models.ParseCredits(row[2])
		if err != nil {
			return models.Course{}, err
		}
		credits = n
	}
	return models.Course{ID: row[0], Name: row[1], Credits: credits, Description: row[3]}, nil
}
