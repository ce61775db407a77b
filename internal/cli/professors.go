package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
)

func (a *App) listProfessors(ctx context.Context, _ []string) error {
	list, err := a.professors.List(ctx)
	if err != nil {
		return err
	}
	renderProfessors(a.out, list)
	return nil
}

func (a *App) showProfessor(ctx context.Context, args []string) error {
	id, err := a.argOrAsk(args, 0, "Professor id")
	if err != nil {
		return err
	}
	pc, err := a.professors.CourseDetails(ctx, id)
	if err != nil {
		return err
	}
	renderProfessorCourse(a.out, pc)
	return nil
}

func (a *App) addProfessor(ctx context.Context, _ []string) error {
	var p models.Professor
	err := a.askEach(
		field{"Professor id", &p.ID},
		field{"Email", &p.Email},
		field{"First name", &p.FirstName},
		field{"Last name", &p.LastName},
		field{"Course id", &p.CourseID},
		field{"Rank (optional)", &p.Rank},
	)
	if err != nil {
		return err
	}

	password, err := a.newPassword("Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.professors.Add(ctx, p, password); err != nil {
		return err
	}
	success(a.out, "Professor added")
	return nil
}

func (a *App) updateProfessor(ctx context.Context, args []string) error {
	id, err := a.argOrAsk(args, 0, "Professor id")
	if err != nil {
		return err
	}
	current, err := a.professors.Get(ctx, id)
	if err != nil {
		return err
	}
	renderProfessors(a.out, []models.Professor{current})
	fmt.Fprintln(a.out, "Leave a field blank to keep it")

	var p models.ProfessorPatch
	err = a.askEach(
		field{"Email", &p.Email},
		field{"First name", &p.FirstName},
		field{"Last name", &p.LastName},
		field{"Course id", &p.CourseID},
		field{"Rank", &p.Rank},
	)
	if err != nil {
		return err
	}

	updated, err := a.professors.Update(ctx, id, p)
	if err != nil {
		return err
	}
	renderProfessors(a.out, []models.Professor{updated})
	success(a.out, "Professor updated")
	return nil
}

func (a *App) deleteProfessor(ctx context.Context, args []string) error {
	id, err := a.argOrAsk(args, 0, "Professor id")
	if err != nil {
		return err
	}
	if err := a.professors.Delete(ctx, id); err != nil {
		return err
	}
	success(a.out, "Professor deleted")
	return nil
}

func (a *App) myCourse(ctx context.Context, _ []string) error {
	p, err := a.professors.FindByEmail(ctx, a.who.Email)
	if err != nil {
		return err
	}
	pc, err := a.professors.CourseDetails(ctx, p.ID)
	if err != nil {
		return err
	}
	renderProfessorCourse(a.out, pc)
	return nil
}
