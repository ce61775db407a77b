package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*CSVRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "login.csv")
	store := NewStore(path)
	_, err := store.Ensure()
	require.NoError(t, err)
	return NewCSVRepository(store), path
}

func TestAppendAndFindFirst(t *testing.T) {
	repo, path := newRepo(t)
	ctx := context.Background()

	first := models.Credential{Email: "a@x.edu", Hash: "h1", Salt: "s1", Role: models.RoleStudent}
	second := models.Credential{Email: "a@x.edu", Hash: "h2", Salt: "s2", Role: models.RoleAdmin}
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	got, err := repo.FindFirst(ctx, "a@x.edu")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	_, err = repo.FindFirst(ctx, "b@x.edu")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Email,Password,Salt,Role\na@x.edu,h1,s1,student\na@x.edu,h2,s2,admin\n", string(b))
}

func TestAppend_AfterEntryWithoutLineBreak(t *testing.T) {
	repo, path := newRepo(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(path, []byte("Email,Password,Salt,Role\na@x.edu,h1,s1,admin"), 0o600))

	second := models.Credential{Email: "b@x.edu", Hash: "h2", Salt: "s2", Role: models.RoleStudent}
	require.NoError(t, repo.Append(ctx, second))

	got, err := repo.FindFirst(ctx, "b@x.edu")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	first, err := repo.FindFirst(ctx, "a@x.edu")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)
}

func TestReplaceFirst(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, models.Credential{Email: "a@x.edu", Hash: "h1", Salt: "s1", Role: models.RoleStudent}))
	require.NoError(t, repo.Append(ctx, models.Credential{Email: "b@x.edu", Hash: "hb", Salt: "sb", Role: models.RoleProfessor}))

	require.NoError(t, repo.ReplaceFirst(ctx, models.Credential{Email: "a@x.edu", Hash: "new", Salt: "fresh", Role: models.RoleStudent}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Credential{
		{Email: "a@x.edu", Hash: "new", Salt: "fresh", Role: models.RoleStudent},
		{Email: "b@x.edu", Hash: "hb", Salt: "sb", Role: models.RoleProfessor},
	}, all)

	err = repo.ReplaceFirst(ctx, models.Credential{Email: "zz@x.edu"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDecode_ShortRowsAreEmpty(t *testing.T) {
	repo, path := newRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("Email,Password,Salt,Role\nlegacy@x.edu,abc\n"), 0o600))

	got, err := repo.FindFirst(context.Background(), "legacy@x.edu")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Hash)
	assert.Empty(t, got.Salt)
	assert.Empty(t, got.Role)
}
