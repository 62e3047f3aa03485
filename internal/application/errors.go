package application

import (
	"errors"
	"fmt"

	"pagesync/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrConfiguration    = errors.New("invalid configuration")
	ErrUnreadableSource = errors.New("unreadable source file")
	ErrServiceCall      = errors.New("service call failed")
	ErrNotFound         = errors.New("not found")
	ErrContentTooLarge  = domain.ErrContentTooLarge
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigurationError reports a required setting that is absent or unusable.
// It aborts a run before any network call.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s %s", e.Setting, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// InputError reports a source file that could not be read.
// It aborts a run before any network call.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cannot read source %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func (e *InputError) Is(target error) bool {
	return target == ErrUnreadableSource
}

// ServiceCallError represents a failed list or create call.
// It is recorded against a single pair and never aborts a run.
type ServiceCallError struct {
	Op       string // "list" or "create"
	ParentID string
	Err      error
}

func (e *ServiceCallError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.ParentID, e.Err)
}

func (e *ServiceCallError) Unwrap() error {
	return e.Err
}

func (e *ServiceCallError) Is(target error) bool {
	return target == ErrServiceCall
}
