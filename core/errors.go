// core/errors.go
package core

import "errors"

// The three error kinds every operation can fail with. Controllers map
// ErrNotFound to 404 and the other two to 400.
var (
	ErrValidation = errors.New("invalid request")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)
