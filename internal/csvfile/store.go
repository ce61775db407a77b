// Package csvfile provides scoped access to one flat comma-separated record
// store: a header row followed by data rows.
//
// Every call opens the file, does its work and closes it before returning,
// on error paths too. Rewrites go to a temporary file in the same directory
// which then replaces the store by rename, so readers never observe a
// half-written store. There is no cross-call locking: one process is assumed
// to own a store at a time.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/google/renameio/v2"
)

const defaultPerm os.FileMode = 0o600

// Record is one data row together with the line it started on.
type Record struct {
	Line   int
	Fields []string
}

// Table is the decoded content of a store. Header is nil for an empty file.
type Table struct {
	Header  []string
	Records []Record
}

// Rows returns the data rows without line information.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.Records))
	for i, r := range t.Records {
		rows[i] = r.Fields
	}
	return rows
}

// Store is a header-first CSV file at a fixed path.
type Store struct {
	path   string
	header []string
}

func New(path string, header []string) *Store {
	return &Store{path: path, header: slices.Clone(header)}
}

func (s *Store) Path() string { return s.path }

func (s *Store) Header() []string { return slices.Clone(s.header) }

// Ensure creates the store holding only the header when it is missing or
// empty. It reports whether it wrote anything.
func (s *Store) Ensure() (bool, error) {
	fi, err := os.Stat(s.path)
	switch {
	case err == nil && fi.Size() > 0:
		return false, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return false, s.ioError("stat", err)
	}
	if err := s.Rewrite(nil); err != nil {
		return false, err
	}
	return true, nil
}

// Read loads the whole store.
func (s *Store) Read() (*Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, s.ioError("open", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	t := &Table{}
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, s.ioError("read", err)
		}
		if t.Header == nil {
			t.Header = fields
			continue
		}
		line, _ := r.FieldPos(0)
		t.Records = append(t.Records, Record{Line: line, Fields: fields})
	}
	return t, nil
}

// Append adds one row at the end of the store, writing the header first if
// the file is empty. A last record without a line break is terminated first.
// The file must already exist.
func (s *Store) Append(row []string) (err error) {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return s.ioError("open", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = s.ioError("close", cerr)
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return s.ioError("stat", err)
	}

	w := csv.NewWriter(f)
	if fi.Size() == 0 {
		if err := w.Write(s.header); err != nil {
			return s.ioError("write", err)
		}
	} else {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, fi.Size()-1); err != nil {
			return s.ioError("read", err)
		}
		if last[0] != '\n' {
			if _, err := f.Write([]byte("\n")); err != nil {
				return s.ioError("write", err)
			}
		}
	}
	if err := w.Write(row); err != nil {
		return s.ioError("write", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return s.ioError("write", err)
	}
	return nil
}

// Rewrite atomically replaces the store with the header followed by rows.
// Existing file permissions are kept.
func (s *Store) Rewrite(rows [][]string) error {
	pf, err := renameio.NewPendingFile(s.path,
		renameio.WithPermissions(defaultPerm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return s.ioError("create temp", err)
	}
	defer pf.Cleanup()

	w := csv.NewWriter(pf)
	if err := w.Write(s.header); err != nil {
		return s.ioError("write", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return s.ioError("write", err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return s.ioError("replace", err)
	}
	return nil
}

func (s *Store) ioError(op string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", common.ErrorStorageIO, op, s.path, err)
}
