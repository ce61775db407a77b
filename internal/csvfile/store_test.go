package csvfile

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var header = []string{"course_id", "course_name", "credits", "description"}

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "courses.csv"), header)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestEnsure_CreatesHeaderOnlyFile(t *testing.T) {
	s := newStore(t)

	created, err := s.Ensure()
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "course_id,course_name,credits,description\n", readFile(t, s.Path()))

	created, err = s.Ensure()
	require.NoError(t, err)
	assert.False(t, created, "existing store is left alone")
}

func TestEnsure_FillsEmptyFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), nil, 0o600))

	created, err := s.Ensure()
	require.NoError(t, err)
	assert.True(t, created)

	tbl, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, header, tbl.Header)
	assert.Empty(t, tbl.Records)
}

func TestRead_MissingFileIsStorageIO(t *testing.T) {
	s := newStore(t)
	_, err := s.Read()
	require.ErrorIs(t, err, common.ErrorStorageIO)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRead_RecordsKeepLineNumbers(t *testing.T) {
	s := newStore(t)
	content := "course_id,course_name,credits,description\r\nC1,\"Data, intro\",4,\n\nC2,Stats,3,short\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o600))

	tbl, err := s.Read()
	require.NoError(t, err)
	require.Len(t, tbl.Records, 2)
	assert.Equal(t, Record{Line: 2, Fields: []string{"C1", "Data, intro", "4", ""}}, tbl.Records[0])
	assert.Equal(t, 4, tbl.Records[1].Line)
	assert.Equal(t, [][]string{{"C1", "Data, intro", "4", ""}, {"C2", "Stats", "3", "short"}}, tbl.Rows())
}

func TestRead_ToleratesShortRows(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("course_id,course_name,credits,description\nC1,Data\n"), 0o600))

	tbl, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"C1", "Data"}, tbl.Records[0].Fields)
}

func TestAppend(t *testing.T) {
	s := newStore(t)
	_, err := s.Ensure()
	require.NoError(t, err)

	require.NoError(t, s.Append([]string{"C1", "Data 101", "4", ""}))
	require.NoError(t, s.Append([]string{"C2", "Stats", "3", "has, comma"}))

	assert.Equal(t,
		"course_id,course_name,credits,description\nC1,Data 101,4,\nC2,Stats,3,\"has, comma\"\n",
		readFile(t, s.Path()))
}

func TestAppend_WritesHeaderIntoEmptyFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), nil, 0o600))

	require.NoError(t, s.Append([]string{"C1", "Data 101", "4", ""}))
	assert.Equal(t, "course_id,course_name,credits,description\nC1,Data 101,4,\n", readFile(t, s.Path()))
}

func TestAppend_TerminatesUnfinishedLastRecord(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("course_id,course_name,credits,description\nC1,Data 101,4,intro"), 0o600))

	require.NoError(t, s.Append([]string{"C2", "Stats", "3", ""}))
	assert.Equal(t,
		"course_id,course_name,credits,description\nC1,Data 101,4,intro\nC2,Stats,3,\n",
		readFile(t, s.Path()))

	tbl, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"C1", "Data 101", "4", "intro"}, {"C2", "Stats", "3", ""}}, tbl.Rows())
}

func TestAppend_HeaderWithoutLineBreak(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("course_id,course_name,credits,description"), 0o600))

	require.NoError(t, s.Append([]string{"C1", "Data 101", "4", ""}))
	assert.Equal(t, "course_id,course_name,credits,description\nC1,Data 101,4,\n", readFile(t, s.Path()))
}

func TestAppend_MissingFile(t *testing.T) {
	s := newStore(t)
	err := s.Append([]string{"C1"})
	require.ErrorIs(t, err, common.ErrorStorageIO)
	assert.NoFileExists(t, s.Path())
}

func TestRewrite_ReplacesContentAndKeepsMode(t *testing.T) {
	s := newStore(t)
	_, err := s.Ensure()
	require.NoError(t, err)
	require.NoError(t, s.Append([]string{"C1", "Data 101", "4", ""}))
	require.NoError(t, os.Chmod(s.Path(), 0o640))

	require.NoError(t, s.Rewrite([][]string{{"C9", "Other", "1", "x"}}))

	assert.Equal(t, "course_id,course_name,credits,description\nC9,Other,1,x\n", readFile(t, s.Path()))
	if runtime.GOOS != "windows" {
		fi, err := os.Stat(s.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), fi.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestRewrite_MissingDirectory(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope", "courses.csv"), header)
	require.ErrorIs(t, s.Rewrite(nil), common.ErrorStorageIO)
}

func TestHeader_IsCopied(t *testing.T) {
	s := newStore(t)
	h := s.Header()
	h[0] = "mutated"
	assert.Equal(t, "course_id", s.Header()[0])
}
