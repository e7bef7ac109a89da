package core

import (
	"context"
	"errors"
)

const (
	CollectionUsers  = "users"
	CollectionChecks = "checks"
)

var ErrNotFound = errors.New("record not found")

// Record is an open-ended JSON object as kept by the record store.
type Record map[string]any

type RecordStore interface {
	List(ctx context.Context, collection string) ([]string, error)
	Read(ctx context.Context, collection, id string) (Record, error)
}

type RecordWriter interface {
	Put(ctx context.Context, collection, id string, rec Record) error
}

type LogArchive interface {
	// List returns archive names without extensions. Plain .log files are always
	// included, compressed archives only when includeCompressed is set.
	List(ctx context.Context, includeCompressed bool) ([]string, error)
	Decompress(ctx context.Context, name string) (string, error)
}
