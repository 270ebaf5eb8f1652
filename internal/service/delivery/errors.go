package delivery

import (
	"errors"
	"fmt"
)

// Категории ошибок. Конкретные ошибки ниже оборачивают одну из них,
// транспорт выбирает код ответа по категории через errors.Is.
var (
	ErrValidation              = errors.New("validation error")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInvalidState            = errors.New("invalid state")
	ErrInvalidConfirmationCode = errors.New("invalid confirmation code")
	ErrNotFound                = errors.New("not found")
)

var (
	ErrInvalidDeliveryID  = fmt.Errorf("%w: invalid delivery id", ErrValidation)
	ErrInvalidCourierID   = fmt.Errorf("%w: invalid courier id", ErrValidation)
	ErrMissingItems       = fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	ErrInvalidItem        = fmt.Errorf("%w: invalid order item", ErrValidation)
	ErrMissingCoordinates = fmt.Errorf("%w: latitude and longitude are required", ErrValidation)
	ErrInvalidCoordinates = fmt.Errorf("%w: coordinates out of range", ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("%w: unknown delivery status", ErrValidation)
	ErrInvalidFilter      = fmt.Errorf("%w: invalid filter", ErrValidation)
	ErrNotACourier        = fmt.Errorf("%w: user is not a courier", ErrValidation)

	ErrMissingActor       = fmt.Errorf("%w: caller identity is required", ErrUnauthorized)
	ErrForbiddenRole      = fmt.Errorf("%w: role is not allowed to perform this operation", ErrUnauthorized)
	ErrNotOwner           = fmt.Errorf("%w: delivery belongs to another user", ErrUnauthorized)
	ErrNotAssignedCourier = fmt.Errorf("%w: caller is not the assigned courier", ErrUnauthorized)
	ErrCourierSelfAssign  = fmt.Errorf("%w: couriers may only assign themselves", ErrUnauthorized)

	ErrCancelNotAllowed     = fmt.Errorf("%w: only CREATED deliveries can be cancelled", ErrInvalidState)
	ErrTransitionNotAllowed = fmt.Errorf("%w: status transition not allowed", ErrInvalidState)
	ErrProofRequired        = fmt.Errorf("%w: DELIVERED is reachable only by submitting a proof", ErrInvalidState)
	ErrAssignRequired       = fmt.Errorf("%w: ASSIGNED is reachable only by assigning a courier", ErrInvalidState)
	ErrIdempotencyInFlight  = fmt.Errorf("%w: order with this idempotency key is being processed", ErrInvalidState)
	ErrConcurrentUpdate     = fmt.Errorf("%w: delivery was changed concurrently, retry the request", ErrInvalidState)

	ErrDeliveryNotFound = fmt.Errorf("%w: delivery not found", ErrNotFound)
	ErrCourierNotFound  = fmt.Errorf("%w: courier not found", ErrNotFound)
	ErrClientNotFound   = fmt.Errorf("%w: client is not registered", ErrNotFound)
	ErrProofNotFound    = fmt.Errorf("%w: proof of delivery not found", ErrNotFound)

	// ErrProofAlreadyExists возвращает репозиторий при гонке двух подтверждений.
	ErrProofAlreadyExists = errors.New("proof of delivery already exists")
)
