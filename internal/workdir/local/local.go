package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const dirPerm = 0755

// LocalProvisioner keeps one directory per asset under basePath.
type LocalProvisioner struct {
	basePath string
}

func NewLocalProvisioner(basePath string) (*LocalProvisioner, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("working directory root is required")
	}
	if err := os.MkdirAll(basePath, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create working directory root: %w", err)
	}
	return &LocalProvisioner{basePath: basePath}, nil
}

func (p *LocalProvisioner) Root() string {
	return p.basePath
}

// Ensure creates <basePath>/<name> and any missing parents. An existing
// directory is left alone; an existing file at that path is an error.
func (p *LocalProvisioner) Ensure(ctx context.Context, name string) (string, bool, error) {
	dirPath, err := p.safeJoin(name)
	if err != nil {
		return "", false, err
	}

	info, err := os.Stat(dirPath)
	switch {
	case err == nil && info.IsDir():
		return dirPath, false, nil
	case err == nil:
		return dirPath, false, fmt.Errorf("%s exists and is not a directory", dirPath)
	case !os.IsNotExist(err):
		return dirPath, false, fmt.Errorf("failed to stat working directory: %w", err)
	}

	if err := os.MkdirAll(dirPath, dirPerm); err != nil {
		return dirPath, false, fmt.Errorf("failed to create working directory: %w", err)
	}
	return dirPath, true, nil
}

// safeJoin resolves name relative to basePath and rejects anything that does
// not land strictly inside it.
func (p *LocalProvisioner) safeJoin(name string) (string, error) {
	absBase, err := filepath.Abs(p.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(p.basePath, name))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}
