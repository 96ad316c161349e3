package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrDuplicate    = errors.New("duplicate record")
	ErrStorage      = errors.New("storage failure")
	ErrProvisioning = errors.New("provisioning failure")
)

// ValidationError reports user-correctable input. Msg is safe to show to the
// client as-is.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Msg
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// DuplicateError reports a unique-key collision in a collection.
type DuplicateError struct {
	Collection string
	Key        string
}

func (e *DuplicateError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %q already exists", e.Collection, e.Key)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// StorageError reports a backing file that could not be read, parsed or
// written. It always needs operator attention.
type StorageError struct {
	Collection string
	Op         string
	Err        error
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

// ProvisioningError reports that an asset record was persisted but its
// working directory could not be created. The record is kept.
type ProvisioningError struct {
	Asset string
	Path  string
	Err   error
}

func (e *ProvisioningError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path == "" {
		return fmt.Sprintf("asset %q saved but working directory not created: %v", e.Asset, e.Err)
	}
	return fmt.Sprintf("asset %q saved but working directory %s not created: %v", e.Asset, e.Path, e.Err)
}

func (e *ProvisioningError) Unwrap() []error { return []error{ErrProvisioning, e.Err} }
