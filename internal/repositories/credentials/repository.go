// Package credentials persists credential entries (email, hash, salt, role)
// in the login store. It knows nothing about hashing; see services.AuthService.
package credentials

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/csvfile"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
)

// Header is the column layout of the login store.
var Header = []string{"Email", "Password", "Salt", "Role"}

type Repository interface {
	// FindFirst returns the first entry for email or common.ErrorNotFound.
	FindFirst(ctx context.Context, email string) (models.Credential, error)
	Append(ctx context.Context, c models.Credential) error
	// ReplaceFirst rewrites the store with the first entry for c.Email
	// replaced by c; other entries are kept as stored.
	ReplaceFirst(ctx context.Context, c models.Credential) error
	List(ctx context.Context) ([]models.Credential, error)
}

type CSVRepository struct {
	store *csvfile.Store
}

func NewCSVRepository(store *csvfile.Store) *CSVRepository {
	return &CSVRepository{store: store}
}

// NewStore returns a csvfile.Store with the login layout.
func NewStore(path string) *csvfile.Store {
	return csvfile.New(path, Header)
}

func (r *CSVRepository) FindFirst(ctx context.Context, email string) (models.Credential, error) {
	tbl, err := r.store.Read()
	if err != nil {
		return models.Credential{}, err
	}
	for _, rec := range tbl.Records {
		if field(rec.Fields, 0) == email {
			return decode(rec.Fields), nil
		}
	}
	return models.Credential{}, fmt.Errorf("%w: credential %q", common.ErrorNotFound, email)
}

func (r *CSVRepository) Append(ctx context.Context, c models.Credential) error {
	return r.store.Append(encode(c))
}

func (r *CSVRepository) ReplaceFirst(ctx context.Context, c models.Credential) error {
	tbl, err := r.store.Read()
	if err != nil {
		return err
	}
	rows := tbl.Rows()
	i := slices.IndexFunc(rows, func(row []string) bool { return field(row, 0) == c.Email })
	if i < 0 {
		return fmt.Errorf("%w: credential %q", common.ErrorNotFound, c.Email)
	}
	rows[i] = encode(c)
	return r.store.Rewrite(rows)
}

func (r *CSVRepository) List(ctx context.Context) ([]models.Credential, error) {
	tbl, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	out := make([]models.Credential, 0, len(tbl.Records))
	for _, rec := range tbl.Records {
		out = append(out, decode(rec.Fields))
	}
	return out, nil
}

func encode(c models.Credential) []string {
	return []string{c.Email, c.Hash, c.Salt, string(c.Role)}
}

// decode is lenient: short rows yield empty fields, which never verify.
func decode(row []string) models.Credential {
	return models.Credential{
		Email: field(row, 0),
		Hash:  field(row, 1),
		Salt:  field(row, 2),
		Role:  models.Role(field(row, 3)),
	}
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
