package club

import "errors"

// Sentinel errors returned by the store. Handlers match on these with
// errors.Is to pick a response status.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrDuplicateID        = errors.New("player id already exists")
	ErrValidation         = errors.New("required field is empty")
)
