package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/dmitrijs2005/checkmygrade/internal/services"
)

func (a *App) listStudents(ctx context.Context, _ []string) error {
	list, err := a.students.List(ctx)
	if err != nil {
		return err
	}
	renderStudents(a.out, list)
	return nil
}

func (a *App) addStudent(ctx context.Context, _ []string) error {
	var s models.Student
	var marks string
	err := a.askEach(
		field{"Student id", &s.ID},
		field{"Email", &s.Email},
		field{"First name", &s.FirstName},
		field{"Last name", &s.LastName},
		field{"Course id (optional)", &s.Course},
		field{"Grade (optional)", &s.Grade},
		field{"Marks (optional)", &marks},
	)
	if err != nil {
		return err
	}
	if s.Marks, err = models.ParseMarks(marks); err != nil {
		return err
	}

	password, err := a.newPassword("Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.students.Add(ctx, s, password); err != nil {
		return err
	}
	success(a.out, "Student added")
	return nil
}

func (a *App) updateStudent(ctx context.Context, args []string) error {
	id, err := a.argOrAsk(args, 0, "Student id")
	if err != nil {
		return err
	}
	current, err := a.students.Get(ctx, id)
	if err != nil {
		return err
	}
	renderStudents(a.out, []models.Student{current})
	fmt.Fprintln(a.out, "Leave a field blank to keep it")

	var p models.StudentPatch
	var marks string
	err = a.askEach(
		field{"Email", &p.Email},
		field{"First name", &p.FirstName},
		field{"Last name", &p.LastName},
		field{"Course id", &p.Course},
		field{"Grade", &p.Grade},
		field{"Marks", &marks},
	)
	if err != nil {
		return err
	}
	if p.Marks, err = models.ParseMarks(marks); err != nil {
		return err
	}

	updated, err := a.students.Update(ctx, id, p)
	if err != nil {
		return err
	}
	renderStudents(a.out, []models.Student{updated})
	success(a.out, "Student updated")
	return nil
}

func (a *App) deleteStudent(ctx context.Context, args []string) error {
	id, err := a.argOrAsk(args, 0, "Student id")
	if err != nil {
		return err
	}
	if err := a.students.Delete(ctx, id); err != nil {
		return err
	}
	success(a.out, "Student deleted")
	return nil
}

func (a *App) findStudent(ctx context.Context, args []string) error {
	email, err := a.argOrAsk(args, 0, "Email")
	if err != nil {
		return err
	}
	s, err := a.students.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	renderStudents(a.out, []models.Student{s})
	return nil
}

func (a *App) sortStudents(ctx context.Context, args []string) error {
	by, err := a.argOrAsk(args, 0, "Sort by (marks|email)")
	if err != nil {
		return err
	}
	f, err := services.ParseStudentSortField(by)
	if err != nil {
		return err
	}
	order, err := a.argOrAsk(args, 1, "Order (asc|desc)")
	if err != nil {
		return err
	}

	var desc bool
	switch strings.ToLower(order) {
	case "", "asc":
	case "desc":
		desc = true
	default:
		return fmt.Errorf("%w: order %q", common.ErrorInvalidInput, order)
	}

	list, err := a.students.Sorted(ctx, f, desc)
	if err != nil {
		return err
	}
	renderStudents(a.out, list)
	return nil
}

// self returns the student record of the logged-in user.
func (a *App) self(ctx context.Context) (models.Student, error) {
	return a.students.FindByEmail(ctx, a.who.Email)
}

func (a *App) myGrade(ctx context.Context, _ []string) error {
	s, err := a.self(ctx)
	if err != nil {
		return err
	}
	course, grade := s.Course, s.Grade
	if course == "" {
		course = "(none)"
	}
	if grade == "" {
		grade = "(none)"
	}
	fmt.Fprintf(a.out, "%s, course: %s, grade: %s\n", s.FullName(), course, grade)
	return nil
}

func (a *App) myMarks(ctx context.Context, _ []string) error {
	s, err := a.self(ctx)
	if err != nil {
		return err
	}
	if s.Marks == nil {
		fmt.Fprintln(a.out, "No marks recorded")
		return nil
	}
	fmt.Fprintf(a.out, "%s, marks: %d\n", s.FullName(), *s.Marks)
	return nil
}
