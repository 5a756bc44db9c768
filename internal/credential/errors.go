package credential

import "errors"

// Domain-specific errors for credential loading.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrMissing is returned when the token file does not exist.
	// The operator must run the token provisioning step first.
	ErrMissing = errors.New("credential: token file not found")

	// ErrUnreadable is returned for any other fault reading the token
	// file (permissions, I/O errors, empty file).
	ErrUnreadable = errors.New("credential: token file unreadable")

	// ErrNotJWT is returned by Inspect when the token does not parse
	// as a JWT. This is diagnostic only; an opaque bearer token is
	// still valid for authentication.
	ErrNotJWT = errors.New("credential: token is not a parseable JWT")
)
