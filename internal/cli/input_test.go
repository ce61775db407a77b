package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  hello world \n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name: ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	got, err := GetSimpleText(in, "Name", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(in, "Name", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_Piped(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(" p a ss \r\nnext\n"))
	var out bytes.Buffer
	pw, err := GetPassword(in, "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte(" p a ss "), pw, "only the line ending is stripped")
	assert.Equal(t, "Password: ", out.String())
}

func TestGetPassword_Terminal(t *testing.T) {
	origTerm, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })
	isTerminal = func(int) bool { return true }

	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(bufio.NewReader(strings.NewReader("")), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
	assert.Equal(t, "Password: \n", out.String())

	boom := errors.New("tty gone")
	readPassword = func(int) ([]byte, error) { return nil, boom }
	_, err = GetPassword(bufio.NewReader(strings.NewReader("")), "Password", io.Discard)
	assert.ErrorIs(t, err, boom)
}
