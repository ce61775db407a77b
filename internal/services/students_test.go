package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/logging"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stu(id, email string, marks *int) models.Student {
	return models.Student{
		User:  models.User{ID: id, Email: email, FirstName: "F" + id, LastName: "L" + id},
		Marks: marks,
	}
}

func TestStudentService_AddRegistersCredential(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.students.Add(ctx, stu("1", "s1@x.edu", intPtr(80)), []byte("pw")))

	got, err := f.students.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "s1@x.edu", got.Email)

	role, err := f.auth.Verify(ctx, "s1@x.edu", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, role)
}

func TestStudentService_AddDuplicateWritesNoCredential(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.students.Add(ctx, stu("1", "s1@x.edu", nil), []byte("pw")))
	before, err := os.ReadFile(f.loginPath)
	require.NoError(t, err)

	err = f.students.Add(ctx, stu("1", "other@x.edu", nil), []byte("pw"))
	assert.ErrorIs(t, err, common.ErrorDuplicateKey)

	after, err := os.ReadFile(f.loginPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStudentService_AddValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	assert.ErrorIs(t, f.students.Add(ctx, stu("", "a@x.edu", nil), []byte("pw")), common.ErrorInvalidInput)
	assert.ErrorIs(t, f.students.Add(ctx, stu("1", "nope", nil), []byte("pw")), common.ErrorInvalidInput)
	assert.ErrorIs(t, f.students.Add(ctx, stu("1", "a@x.edu", nil), nil), common.ErrorInvalidInput)

	all, err := f.students.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStudentService_PartialInsert(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cause := errors.New("disk full")
	svc := NewStudentService(f.students.repo, failingAuth{AuthService: f.auth, err: cause}, logging.Discard())

	err := svc.Add(ctx, stu("9", "s9@x.edu", nil), []byte("pw"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorPartialInsert)
	assert.ErrorIs(t, err, cause)

	var pe *common.PartialInsertError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "student", pe.Entity)
	assert.Equal(t, "9", pe.Key)

	_, err = svc.Get(ctx, "9")
	assert.NoError(t, err, "entity row is not rolled back")
}

func TestStudentService_UpdateDeleteKeepsCredential(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.students.Add(ctx, stu("1", "s1@x.edu", intPtr(50)), []byte("pw")))

	got, err := f.students.Update(ctx, "1", models.StudentPatch{Grade: "A", Marks: intPtr(91)})
	require.NoError(t, err)
	assert.Equal(t, "A", got.Grade)
	assert.Equal(t, 91, *got.Marks)

	_, err = f.students.Update(ctx, "404", models.StudentPatch{Grade: "A"})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, f.students.Delete(ctx, "1"))
	assert.ErrorIs(t, f.students.Delete(ctx, "1"), common.ErrorNotFound)

	_, err = f.auth.Verify(ctx, "s1@x.edu", []byte("pw"))
	assert.NoError(t, err)
}

func TestStudentService_FindByEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.students.Add(ctx, stu("1", "Ada@X.edu", nil), []byte("pw")))

	got, err := f.students.FindByEmail(ctx, "ada@x.EDU")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)

	_, err = f.students.FindByEmail(ctx, "bob@x.edu")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestStudentService_Sorted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, s := range []models.Student{
		stu("1", "c@x.edu", intPtr(70)),
		stu("2", "A@x.edu", nil),
		stu("3", "b@x.edu", intPtr(95)),
		stu("4", "d@x.edu", intPtr(70)),
	} {
		require.NoError(t, f.students.Add(ctx, s, []byte("pw")))
	}

	ids := func(list []models.Student) []string {
		out := make([]string, 0, len(list))
		for _, s := range list {
			out = append(out, s.ID)
		}
		return out
	}

	got, err := f.students.Sorted(ctx, SortByMarks, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "4", "3"}, ids(got))

	got, err = f.students.Sorted(ctx, SortByMarks, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "4", "2"}, ids(got))

	got, err = f.students.Sorted(ctx, SortByEmail, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(got))

	_, err = f.students.Sorted(ctx, "age", false)
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestStudentService_SortedNegativeMarksAfterMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, s := range []models.Student{
		stu("1", "a@x.edu", intPtr(-5)),
		stu("2", "b@x.edu", nil),
		stu("3", "c@x.edu", intPtr(-1)),
		stu("4", "d@x.edu", intPtr(0)),
	} {
		require.NoError(t, f.students.Add(ctx, s, []byte("pw")))
	}

	got, err := f.students.Sorted(ctx, SortByMarks, false)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"2", "1", "3", "4"}, []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID})

	got, err = f.students.Sorted(ctx, SortByMarks, true)
	require.NoError(t, err)
	assert.Equal(t, "2", got[3].ID)
}

func TestParseStudentSortField(t *testing.T) {
	f, err := ParseStudentSortField(" Marks ")
	require.NoError(t, err)
	assert.Equal(t, SortByMarks, f)
	_, err = ParseStudentSortField("age")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
}
