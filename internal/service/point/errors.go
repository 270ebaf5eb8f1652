package point

import "errors"

var (
	ErrMissingCoordinates = errors.New("missing coordinates")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidPointID     = errors.New("invalid point id")

	ErrPointNotFound = errors.New("delivery point not found")
)
