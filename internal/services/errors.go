package services

import "errors"

// Authorization failure taxonomy. The middleware maps the first three to
// 401 and ErrUnauthorized to 403; the response body never says which
// check failed beyond the label, so a bad token and an unknown user are
// indistinguishable to the caller.
var (
	ErrNoToken         = errors.New("No token provided")
	ErrInvalidToken    = errors.New("Invalid token")
	ErrProfileNotFound = errors.New("Profile not found")
	ErrUnauthorized    = errors.New("Unauthorized")
)

// ErrNotFound reports a missing entity on get/update/delete.
var ErrNotFound = errors.New("not found")

// ErrInvalidRole reports an admin-role value outside the closed set.
var ErrInvalidRole = errors.New("invalid role value")
