package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrForbidden             = errors.New("forbidden")

	ErrUserNotFound = errors.New("user not found")
	ErrConflict     = errors.New("resource already exists")
)
