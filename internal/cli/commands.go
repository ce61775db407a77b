package cli

import (
	"slices"

	"github.com/dmitrijs2005/checkmygrade/internal/models"
)

var (
	adminOnly     = []models.Role{models.RoleAdmin}
	studentOnly   = []models.Role{models.RoleStudent}
	professorOnly = []models.Role{models.RoleProfessor}
	anyRole       = []models.Role{models.RoleAdmin, models.RoleStudent, models.RoleProfessor}
)

func (a *App) commandTable() []command {
	return []command{
		{name: "students", help: "list students", roles: adminOnly, run: a.listStudents},
		{name: "addstudent", help: "add a student and its login", roles: adminOnly, run: a.addStudent},
		{name: "updatestudent", usage: "[id]", help: "change student fields", roles: adminOnly, run: a.updateStudent},
		{name: "delstudent", usage: "[id]", help: "delete a student", roles: adminOnly, run: a.deleteStudent},
		{name: "findstudent", usage: "[email]", help: "find a student by email", roles: adminOnly, run: a.findStudent},
		{name: "sortstudents", usage: "[marks|email] [asc|desc]", help: "list students sorted", roles: adminOnly, run: a.sortStudents},

		{name: "professors", help: "list professors", roles: adminOnly, run: a.listProfessors},
		{name: "professor", usage: "[id]", help: "show a professor with its course", roles: adminOnly, run: a.showProfessor},
		{name: "addprofessor", help: "add a professor and its login", roles: adminOnly, run: a.addProfessor},
		{name: "updateprofessor", usage: "[id]", help: "change professor fields", roles: adminOnly, run: a.updateProfessor},
		{name: "delprofessor", usage: "[id]", help: "delete a professor", roles: adminOnly, run: a.deleteProfessor},

		{name: "courses", help: "list courses", roles: anyRole, run: a.listCourses},
		{name: "addcourse", help: "add a course", roles: adminOnly, run: a.addCourse},
		{name: "updatecourse", usage: "[id]", help: "change course fields", roles: adminOnly, run: a.updateCourse},
		{name: "delcourse", usage: "[id]", help: "delete a course", roles: adminOnly, run: a.deleteCourse},

		{name: "grades", usage: "[student|course]", help: "grade report", roles: adminOnly, run: a.gradeReport},
		{name: "addgrade", help: "record a score", roles: adminOnly, run: a.addGrade},
		{name: "delgrade", help: "remove every score for a student and course", roles: adminOnly, run: a.removeGrade},
		{name: "modgrade", help: "change the first score for a student and course", roles: adminOnly, run: a.modifyGrade},
		{name: "stats", usage: "[course]", help: "average and median score", roles: adminOnly, run: a.gradeStats},

		{name: "mygrade", help: "show your course and grade", roles: studentOnly, run: a.myGrade},
		{name: "mymarks", help: "show your marks", roles: studentOnly, run: a.myMarks},
		{name: "mycourse", help: "show the course you teach", roles: professorOnly, run: a.myCourse},

		{name: "passwd", help: "change your password", roles: anyRole, run: a.changePassword},
	}
}

func (a *App) lookup(name string) (command, bool) {
	i := slices.IndexFunc(a.commands, func(c command) bool { return c.name == name })
	if i < 0 {
		return command{}, false
	}
	return a.commands[i], true
}

func (a *App) available(role models.Role) []command {
	var out []command
	for _, c := range a.commands {
		if c.allows(role) {
			out = append(out, c)
		}
	}
	return out
}
