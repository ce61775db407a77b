package services

import (
	"context"

	"github.com/dmitrijs2005/checkmygrade/internal/logging"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/dmitrijs2005/checkmygrade/internal/repositories/entity"
)

type CourseService struct {
	repo entity.Repository[models.Course]
	log  logging.Logger
}

func NewCourseService(repo entity.Repository[models.Course], log logging.Logger) *CourseService {
	return &CourseService{repo: repo, log: log.With("service", "courses")}
}

func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return s.repo.List(ctx)
}

func (s *CourseService) Add(ctx context.Context, c models.Course) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return err
	}
	s.log.Info(ctx, "course added", "key", c.ID)
	return nil
}

func (s *CourseService) Update(ctx context.Context, id string, patch models.CoursePatch) (models.Course, error) {
	c, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return models.Course{}, err
	}
	s.log.Info(ctx, "course updated", "key", id)
	return c, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "course deleted", "key", id)
	return nil
}
