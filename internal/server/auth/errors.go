package auth

import (
	"errors"
	"fmt"
)

// Authentication failure taxonomy. Handlers match with errors.Is and map
// both kinds to a generic denial; the wrapped cause is for server-side logs.
var (
	// ErrInvalidCredentials covers wrong login, wrong password, wrong or
	// missing refresh token, and no session on file. Intentionally does not
	// say which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccessDenied is returned when a structurally invalid, expired or
	// tampered token is presented where a valid signed token was required.
	ErrAccessDenied = errors.New("access denied")
)

// accessDenied wraps the verification cause so it stays visible in logs
// while errors.Is(err, ErrAccessDenied) still holds.
func accessDenied(cause error) error {
	return fmt.Errorf("%w: %v", ErrAccessDenied, cause)
}
