package workdir

import "context"

// Provisioner creates per-asset working directories.
type Provisioner interface {
	// Ensure makes sure the working directory for name exists and returns its
	// path. created is false when the directory was already there.
	Ensure(ctx context.Context, name string) (path string, created bool, err error)
}
