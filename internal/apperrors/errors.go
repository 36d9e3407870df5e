package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller's credentials were missing or invalid.
var ErrUnauthorized = errors.New("not authorized")

// ErrInvalidRefreshToken indicates that a presented refresh token does not match
// the one stored on the user record, or that its subject no longer exists.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// ErrImmutableField indicates an attempt to change a field that is fixed after
// creation (username, email).
var ErrImmutableField = errors.New("field cannot be updated")
