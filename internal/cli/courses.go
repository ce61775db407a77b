package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/models"
)

func (a *App) listCourses(ctx context.Context, _ []string) error {
	list, err := a.courses.List(ctx)
	if err != nil {
		return err
	}
	renderCourses(a.out, list)
	return nil
}

func (a *App) addCourse(ctx context.Context, _ []string) error {
	var c models.Course
	var credits string
	err := a.askEach(
		field{"Course id", &c.ID},
		field{"Name", &c.Name},
		field{"Credits", &credits},
		field{"Description (optional)", &c.Description},
	)
	if err != nil {
		return err
	}
	if c.Credits, err = models.ParseCredits(credits); err != nil {
		return err
	}

	if err := a.courses.Add(ctx, c); err != nil {
		return err
	}
	success(a.out, "Course added")
	return nil
}

func (a *App) updateCourse(ctx context.Context, args []string) error {
	id, err := a.argOrAsk(args, 0, "Course id")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Leave a field blank to keep it")

	var p models.CoursePatch
	var credits string
	err = a.askEach(
		field{"Name", &p.Name},
		field{"Credits", &credits},
		field{"Description", &p.Description},
	)
	if err != nil {
		return err
	}
	if strings.TrimSpace(credits) != "" {
		n, err := models.ParseCredits(credits)
		if err != nil {
			return err
		}
		p.Credits = &n
	}

	updated, err := a.courses.Update(ctx, id, p)
	if err != nil {
		return err
	}
	renderCourses(a.out, []models.Course{updated})
	success(a.out, "Course updated")
	return nil
}

func (a *App) deleteCourse(ctx context.Context, args []string) error {
	id, err := a.argOrAsk(args, 0, "Course id")
	if err != nil {
		return err
	}
	if err := a.courses.Delete(ctx, id); err != nil {
		return err
	}
	success(a.out, "Course deleted")
	return nil
}
