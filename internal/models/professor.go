package models

// Professor is one row of the professor store. Rank is optional.
type Professor struct {
	User
	CourseID string
	Rank     string
}

type ProfessorPatch struct {
	UserPatch
	CourseID string
	Rank     string
}

func (p ProfessorPatch) Apply(pr Professor) Professor {
	pr.User = p.UserPatch.apply(pr.User)
	pr.CourseID = keep(pr.CourseID, p.CourseID)
	pr.Rank = keep(pr.Rank, p.Rank)
	return pr
}

// ProfessorCourse is the read-only join of a professor with the course it
// references. Course is nil when the id is empty or unknown.
type ProfessorCourse struct {
	Professor Professor
	Course    *Course
}
