package entity

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/csvfile"
	"github.com/dmitrijs2005/checkmygrade/internal/logging"
)

// CSVRepository is the Repository backed by a csvfile.Store.
type CSVRepository[T any] struct {
	store *csvfile.Store
	codec Codec[T]
	log   logging.Logger
}

func NewRepository[T any](store *csvfile.Store, codec Codec[T], log logging.Logger) *CSVRepository[T] {
	return &CSVRepository[T]{
		store: store,
		codec: codec,
		log:   log.With("store", codec.Name(), "path", store.Path()),
	}
}

func (r *CSVRepository[T]) List(ctx context.Context) ([]T, error) {
	tbl, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(tbl.Records))
	for _, rec := range tbl.Records {
		v, err := r.decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *CSVRepository[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T
	tbl, err := r.load(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(tbl.Records, key)
	if i < 0 {
		return zero, r.notFound(key)
	}
	return r.decode(tbl.Records[i])
}

func (r *CSVRepository[T]) Insert(ctx context.Context, rec T) error {
	key := r.codec.Key(rec)
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: %s key is empty", common.ErrorInvalidInput, r.codec.Name())
	}

	tbl, err := r.load(ctx)
	if err != nil {
		return err
	}
	if indexOf(tbl.Records, key) >= 0 {
		return fmt.Errorf("%w: %s %q already exists", common.ErrorDuplicateKey, r.codec.Name(), key)
	}

	if err := r.store.Append(r.codec.Encode(rec)); err != nil {
		return err
	}
	r.log.Debug(ctx, "row appended", "key", key)
	return nil
}

func (r *CSVRepository[T]) Update(ctx context.Context, key string, patch Patch[T]) (T, error) {
	var zero T
	tbl, err := r.load(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(tbl.Records, key)
	if i < 0 {
		return zero, r.notFound(key)
	}

	current, err := r.decode(tbl.Records[i])
	if err != nil {
		return zero, err
	}
	updated := patch.Apply(current)
	if r.codec.Key(updated) != key {
		return zero, fmt.Errorf("%w: %s key cannot change", common.ErrorInvalidInput, r.codec.Name())
	}

	rows := tbl.Rows()
	rows[i] = r.codec.Encode(updated)
	if err := r.store.Rewrite(rows); err != nil {
		return zero, err
	}
	r.log.Debug(ctx, "row updated", "key", key)
	return updated, nil
}

func (r *CSVRepository[T]) Delete(ctx context.Context, key string) error {
	tbl, err := r.load(ctx)
	if err != nil {
		return err
	}

	rows := tbl.Rows()
	kept := slices.DeleteFunc(slices.Clone(rows), func(row []string) bool {
		return len(row) > 0 && row[0] == key
	})
	if len(kept) == len(rows) {
		return r.notFound(key)
	}

	if err := r.store.Rewrite(kept); err != nil {
		return err
	}
	r.log.Debug(ctx, "rows deleted", "key", key, "count", len(rows)-len(kept))
	return nil
}

func (r *CSVRepository[T]) load(ctx context.Context) (*csvfile.Table, error) {
	tbl, err := r.store.Read()
	if err != nil {
		r.log.Error(ctx, "read store", "error", err)
		return nil, err
	}
	if tbl.Header != nil && !slices.Equal(tbl.Header, r.codec.Header()) {
		r.log.Warn(ctx, "unexpected header", "header", strings.Join(tbl.Header, ","))
	}
	return tbl, nil
}

func (r *CSVRepository[T]) decode(rec csvfile.Record) (T, error) {
	var zero T
	want := len(r.codec.Header())
	if len(rec.Fields) < want {
		return zero, fmt.Errorf("%w: %s line %d has %d fields, want %d",
			common.ErrorInvalidInput, r.store.Path(), rec.Line, len(rec.Fields), want)
	}
	v, err := r.codec.Decode(rec.Fields)
	if err != nil {
		return zero, fmt.Errorf("%s line %d: %w", r.store.Path(), rec.Line, err)
	}
	return v, nil
}

func (r *CSVRepository[T]) notFound(key string) error {
	return fmt.Errorf("%w: %s %q", common.ErrorNotFound, r.codec.Name(), key)
}

func indexOf(records []csvfile.Record, key string) int {
	return slices.IndexFunc(records, func(rec csvfile.Record) bool {
		return len(rec.Fields) > 0 && rec.Fields[0] == key
	})
}
