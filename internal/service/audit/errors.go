package audit

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidAction     = errors.New("invalid action")

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrAlreadyRecorded  = errors.New("event already recorded")
)
