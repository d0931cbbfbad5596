// services/errors.go
package services

import "errors"

var (
	// ErrDuplicateUser signals a username or email conflict on account creation.
	ErrDuplicateUser = errors.New("username or email already in use")
)
