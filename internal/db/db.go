package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DB is a directory of JSON collection files. Each collection lives in
// <root>/<id>.json and is guarded by its own write lock, so appends to
// "assets" never wait on appends to "tasks".
type DB struct {
	root string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func Open(root string) (*DB, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("database root is required")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	return &DB{root: root, locks: make(map[string]*sync.Mutex)}, nil
}

func (d *DB) Root() string {
	return d.root
}

func (d *DB) path(id string) string {
	return filepath.Join(d.root, id+".json")
}

// lockFor returns the write lock for collection id, creating it on first use.
func (d *DB) lockFor(id string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.locks[id]
	if !ok {
		l = &sync.Mutex{}
		d.locks[id] = l
	}
	return l
}
