package service

import (
	"errors"
	"fmt"
)

// Domain error categories. Handlers translate these to HTTP status codes:
// ErrValidation → 400, ErrInvalidCredentials/ErrInvalidToken → 401,
// ErrNotFound → 404. A not-owned record surfaces as ErrNotFound on purpose,
// so callers cannot probe for other users' record ids.
var (
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email/password combination")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotFound           = errors.New("record not found")
)

// invalidf builds a validation error with a client-facing reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
