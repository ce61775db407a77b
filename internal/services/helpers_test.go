package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/checkmygrade/internal/cryptox"
	"github.com/dmitrijs2005/checkmygrade/internal/csvfile"
	"github.com/dmitrijs2005/checkmygrade/internal/logging"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/dmitrijs2005/checkmygrade/internal/repositories/credentials"
	"github.com/dmitrijs2005/checkmygrade/internal/repositories/entity"
	"github.com/stretchr/testify/require"
)

const testIterations = 1000

type fixture struct {
	dir        string
	loginPath  string
	auth       AuthService
	students   *StudentService
	professors *ProfessorService
	courses    *CourseService
}

func ensured(t *testing.T, s *csvfile.Store) *csvfile.Store {
	t.Helper()
	_, err := s.Ensure()
	require.NoError(t, err)
	return s
}

func newAuth(t *testing.T, loginPath string) AuthService {
	t.Helper()
	h, err := cryptox.NewPasswordHasher(testIterations)
	require.NoError(t, err)
	repo := credentials.NewCSVRepository(ensured(t, credentials.NewStore(loginPath)))
	return NewAuthService(repo, h, logging.Discard())
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	log := logging.Discard()
	f := &fixture{dir: dir, loginPath: filepath.Join(dir, "login.csv")}
	f.auth = newAuth(t, f.loginPath)

	sRepo := entity.NewRepository[models.Student](
		ensured(t, csvfile.New(filepath.Join(dir, "students.csv"), entity.StudentCodec{}.Header())),
		entity.StudentCodec{}, log)
	pRepo := entity.NewRepository[models.Professor](
		ensured(t, csvfile.New(filepath.Join(dir, "professors.csv"), entity.ProfessorCodec{}.Header())),
		entity.ProfessorCodec{}, log)
	cRepo := entity.NewRepository[models.Course](
		ensured(t, csvfile.New(filepath.Join(dir, "courses.csv"), entity.CourseCodec{}.Header())),
		entity.CourseCodec{}, log)

	f.students = NewStudentService(sRepo, f.auth, log)
	f.professors = NewProfessorService(pRepo, cRepo, f.auth, log)
	f.courses = NewCourseService(cRepo, log)
	return f
}

// failingAuth rejects every registration.
type failingAuth struct {
	AuthService
	err error
}

func (f failingAuth) Register(context.Context, string, []byte, models.Role) error { return f.err }

func intPtr(n int) *int { return &n }
