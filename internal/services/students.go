package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/logging"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/dmitrijs2005/checkmygrade/internal/repositories/entity"
)

// StudentSortField selects the ordering used by StudentService.Sorted.
type StudentSortField string

const (
	SortByMarks StudentSortField = "marks"
	SortByEmail StudentSortField = "email"
)

// ParseStudentSortField accepts "marks" or "email".
func ParseStudentSortField(s string) (StudentSortField, error) {
	switch f := StudentSortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortByMarks, SortByEmail:
		return f, nil
	default:
		return "", fmt.Errorf("%w: cannot sort students by %q", common.ErrorInvalidInput, s)
	}
}

type StudentService struct {
	repo entity.Repository[models.Student]
	auth AuthService
	log  logging.Logger
}

func NewStudentService(repo entity.Repository[models.Student], auth AuthService, log logging.Logger) *StudentService {
	return &StudentService{repo: repo, auth: auth, log: log.With("service", "students")}
}

// Add stores the student and registers its login with the student role.
func (s *StudentService) Add(ctx context.Context, st models.Student, password []byte) error {
	return insertWithCredential(ctx, s.repo, s.auth, s.log, "student", st, st.User, password, models.RoleStudent)
}

func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.repo.List(ctx)
}

func (s *StudentService) Get(ctx context.Context, id string) (models.Student, error) {
	return s.repo.Get(ctx, id)
}

func (s *StudentService) Update(ctx context.Context, id string, patch models.StudentPatch) (models.Student, error) {
	st, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return models.Student{}, err
	}
	s.log.Info(ctx, "student updated", "key", id)
	return st, nil
}

// Delete removes the student row. The login entry is left in place.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "student deleted", "key", id)
	return nil
}

// FindByEmail returns the first student whose email matches, ignoring case.
func (s *StudentService) FindByEmail(ctx context.Context, email string) (models.Student, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return models.Student{}, err
	}
	i := slices.IndexFunc(all, func(st models.Student) bool { return strings.EqualFold(st.Email, email) })
	if i < 0 {
		return models.Student{}, fmt.Errorf("%w: student with email %q", common.ErrorNotFound, email)
	}
	return all[i], nil
}

// Sorted lists students ordered by field. Students without marks sort before
// any marked student; email ordering ignores case. Ties keep file order.
func (s *StudentService) Sorted(ctx context.Context, field StudentSortField, desc bool) ([]models.Student, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var compare func(a, b models.Student) int
	switch field {
	case SortByMarks:
		compare = compareMarks
	case SortByEmail:
		compare = func(a, b models.Student) int {
			return strings.Compare(strings.ToLower(a.Email), strings.ToLower(b.Email))
		}
	default:
		return nil, fmt.Errorf("%w: cannot sort students by %q", common.ErrorInvalidInput, field)
	}
	if desc {
		asc := compare
		compare = func(a, b models.Student) int { return asc(b, a) }
	}

	slices.SortStableFunc(all, compare)
	return all, nil
}

// compareMarks orders a missing mark before every recorded one, negative
// marks included.
func compareMarks(a, b models.Student) int {
	switch {
	case a.Marks == nil && b.Marks == nil:
		return 0
	case a.Marks == nil:
		return -1
	case b.Marks == nil:
		return 1
	}
	return cmp.Compare(*a.Marks, *b.Marks)
}
