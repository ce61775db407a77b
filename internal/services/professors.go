package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/logging"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/dmitrijs2005/checkmygrade/internal/repositories/entity"
)

type ProfessorService struct {
	repo    entity.Repository[models.Professor]
	courses entity.Repository[models.Course]
	auth    AuthService
	log     logging.Logger
}

func NewProfessorService(
	repo entity.Repository[models.Professor],
	courses entity.Repository[models.Course],
	auth AuthService,
	log logging.Logger,
) *ProfessorService {
	return &ProfessorService{repo: repo, courses: courses, auth: auth, log: log.With("service", "professors")}
}

// Add stores the professor and registers its login with the professor role.
// The course id is stored as given; it is not checked against the courses.
func (s *ProfessorService) Add(ctx context.Context, p models.Professor, password []byte) error {
	return insertWithCredential(ctx, s.repo, s.auth, s.log, "professor", p, p.User, password, models.RoleProfessor)
}

func (s *ProfessorService) List(ctx context.Context) ([]models.Professor, error) {
	return s.repo.List(ctx)
}

func (s *ProfessorService) Get(ctx context.Context, id string) (models.Professor, error) {
	return s.repo.Get(ctx, id)
}

func (s *ProfessorService) Update(ctx context.Context, id string, patch models.ProfessorPatch) (models.Professor, error) {
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return models.Professor{}, err
	}
	s.log.Info(ctx, "professor updated", "key", id)
	return p, nil
}

func (s *ProfessorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "professor deleted", "key", id)
	return nil
}

// FindByEmail returns the first professor whose email matches, ignoring case.
func (s *ProfessorService) FindByEmail(ctx context.Context, email string) (models.Professor, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return models.Professor{}, err
	}
	for _, p := range all {
		if strings.EqualFold(p.Email, email) {
			return p, nil
		}
	}
	return models.Professor{}, fmt.Errorf("%w: professor with email %q", common.ErrorNotFound, email)
}

// CourseDetails joins the professor with the course it teaches. Course is
// nil when the professor has no course id or the id is unknown.
func (s *ProfessorService) CourseDetails(ctx context.Context, id string) (models.ProfessorCourse, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.ProfessorCourse{}, err
	}
	out := models.ProfessorCourse{Professor: p}

	cid := strings.TrimSpace(p.CourseID)
	if cid == "" {
		return out, nil
	}
	c, err := s.courses.Get(ctx, cid)
	switch {
	case err == nil:
		out.Course = &c
	case errors.Is(err, common.ErrorNotFound):
		s.log.Debug(ctx, "professor references unknown course", "key", id, "course_id", cid)
	default:
		return models.ProfessorCourse{}, err
	}
	return out, nil
}
