// Package errs defines the error taxonomy shared by the navigation, blueprint
// and provider layers. None of these errors is fatal to the process.
package errs

import (
	"errors"
	"fmt"
)

// ErrNotFound represents a stale index or id, such as a blueprint that was
// deleted while still referenced. Callers treat it as a no-op.
var ErrNotFound = errors.New("not found")

// ErrNoBlueprintOpen represents a resource mutation without an open blueprint.
var ErrNoBlueprintOpen = fmt.Errorf("no blueprint open: %w", ErrNotFound)

// ErrTaskInFlight represents an attempt to begin a load while another is running.
var ErrTaskInFlight = errors.New("a loading task is already in flight")

// ValidationError is reported inline for bad user input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ProviderError wraps a failed call to the resource provider.
type ProviderError struct {
	Op   string
	Kind string
	ID   string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed save. The in-memory state stays
// authoritative until the next successful save.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsPersistence reports whether err is a PersistenceError.
func IsPersistence(err error) bool {
	var p *PersistenceError
	return errors.As(err, &p)
}
