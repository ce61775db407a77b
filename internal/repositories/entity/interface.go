package entity

import "context"

// Codec maps one record type to and from a store row.
type Codec[T any] interface {
	// Name is the singular entity name used in errors and logs.
	Name() string
	// Header is the canonical column order; column 0 is the key.
	Header() []string
	Key(rec T) string
	Encode(rec T) []string
	Decode(row []string) (T, error)
}

// Patch is a partial update applied to a stored record.
type Patch[T any] interface {
	Apply(rec T) T
}

// Repository describes keyed CRUD over one record store.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, key string) (T, error)
	Insert(ctx context.Context, rec T) error
	Update(ctx context.Context, key string, patch Patch[T]) (T, error)
	Delete(ctx context.Context, key string) error
}
