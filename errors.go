package identity

import (
	"errors"
	"fmt"

	"github.com/exertive/identity/guid"
	"github.com/exertive/identity/identification"
	"github.com/exertive/identity/locator"
)

// Sentinel errors for identity key derivation.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrUnsupportedVersion indicates a hash version other than 3 or 5 was requested.
	ErrUnsupportedVersion = guid.ErrUnsupportedVersion

	// ErrUnknownModel indicates a model name absent from the locator registry.
	ErrUnknownModel = locator.ErrUnknownModel

	// ErrInvalidConfig indicates the provided configuration is invalid or incomplete.
	ErrInvalidConfig = identification.ErrInvalidConfig
)

// Error kinds categorize errors by their type.
const (
	// KindUnsupportedVersion represents a request for an unsupported hash version.
	KindUnsupportedVersion = "unsupported_version"

	// KindUnknownModel represents a model missing from the locator registry.
	KindUnknownModel = "unknown_model"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindInternal represents anything else.
	KindInternal = "internal"
)

// Error wraps an underlying error with the operation that failed and the
// category of error.
//
// Error supports unwrapping, so errors.Is() and errors.As() see through it.
//
// Example usage:
//
//	_, err := id.Identify("UnknownThing", "42")
//	var ie *identity.Error
//	if errors.As(err, &ie) && ie.Kind == identity.KindUnknownModel {
//		// the model was never registered
//	}
type Error struct {
	// Op is the operation that failed (e.g., "Identifier.Identify").
	Op string

	// Kind categorizes the error (e.g., KindUnknownModel).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context carries the inputs of the failed call (optional).
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("identity: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("identity: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("identity: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by Kind (and Op, when the target sets one), and
// otherwise delegates to the underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of e with ctx merged into its context.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	newErr.Context = make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		newErr.Context[k] = v
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// kindOf classifies err by the sentinel it wraps.
func kindOf(err error) string {
	switch {
	case errors.Is(err, ErrUnknownModel):
		return KindUnknownModel
	case errors.Is(err, ErrUnsupportedVersion):
		return KindUnsupportedVersion
	case errors.Is(err, ErrInvalidConfig):
		return KindConfiguration
	default:
		return KindInternal
	}
}

// wrap returns nil for a nil err and an *Error otherwise.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kindOf(err), Err: err}
}
