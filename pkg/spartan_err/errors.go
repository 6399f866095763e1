/* pkg/spartan_err/errors.go */

package spartan_err

import (
	"errors"
	"fmt"
)

// UserError marks an error as expected and user-fixable (bad flag value,
// invalid pattern, unknown history entry). The CLI reports these softly and
// exits zero instead of dumping a stack trace.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	if e == nil || e.cause == nil {
		return "user error"
	}
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// NewUserError builds an expected error from a format string.
func NewUserError(format string, args ...any) error {
	return &UserError{cause: fmt.Errorf(format, args...)}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}
