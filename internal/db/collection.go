package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vbonduro/gridtrack/internal/domain"
)

// Collection is an ordered list of records of one kind stored as a single
// JSON array. It holds no state between calls: every Load and Append reads
// the file again.
type Collection[T any] struct {
	db  *DB
	id  string
	key func(T) string
}

// NewCollection returns the collection id in d. If key is non-nil, Append
// rejects a record whose key matches an existing record.
func NewCollection[T any](d *DB, id string, key func(T) string) *Collection[T] {
	return &Collection[T]{db: d, id: id, key: key}
}

func (c *Collection[T]) ID() string {
	return c.id
}

func (c *Collection[T]) Path() string {
	return c.db.path(c.id)
}

// Load returns all records in insertion order. It takes no lock; writes
// replace the file atomically.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := readArray(c.Path())
	if err != nil {
		return nil, c.storageErr("load", err)
	}

	records := make([]T, 0, len(raw))
	for i, r := range raw {
		rec, err := decodeRecord[T](r)
		if err != nil {
			return nil, c.storageErr("load", fmt.Errorf("record %d: %w", i, err))
		}
		records = append(records, rec)
	}
	return records, nil
}

// Append adds rec to the end of the collection under the collection's write
// lock. Existing records are written back as read, never re-encoded through
// T, so fields this version does not know about survive the rewrite.
func (c *Collection[T]) Append(ctx context.Context, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	l := c.db.lockFor(c.id)
	l.Lock()
	defer l.Unlock()

	raw, err := readArray(c.Path())
	if err != nil {
		return c.storageErr("load", err)
	}

	if c.key != nil {
		key := c.key(rec)
		for i, r := range raw {
			existing, err := decodeRecord[T](r)
			if err != nil {
				return c.storageErr("load", fmt.Errorf("record %d: %w", i, err))
			}
			if c.key(existing) == key {
				return &domain.DuplicateError{Collection: c.id, Key: key}
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(append(raw, encoded))
	if err != nil {
		return c.storageErr("encode", err)
	}
	if err := writeFileAtomic(c.Path(), append(data, '\n'), 0644); err != nil {
		return c.storageErr("write", err)
	}
	return nil
}

func (c *Collection[T]) storageErr(op string, err error) error {
	return &domain.StorageError{Collection: c.id, Op: op, Err: err}
}

func decodeRecord[T any](r json.RawMessage) (T, error) {
	var rec T
	if bytes.Equal(bytes.TrimSpace(r), []byte("null")) {
		return rec, errors.New("null record")
	}
	if err := json.Unmarshal(r, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}
