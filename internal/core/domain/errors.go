package domain

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUpdateNotFound     = errors.New("site update not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid workflow transition")
	ErrValidation         = errors.New("validation failed")
	ErrSlotUnavailable    = errors.New("requested slot is not available")
)
