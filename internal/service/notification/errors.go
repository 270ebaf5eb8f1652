package notification

import "errors"

var (
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrInvalidTitle          = errors.New("title is required")
	ErrInvalidMessage        = errors.New("message is required")
	ErrInvalidType           = errors.New("invalid notification type")

	// чужое уведомление неотличимо от несуществующего
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUserNotFound         = errors.New("user not found")
)
