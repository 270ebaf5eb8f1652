package inventory

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidProductID      = errors.New("invalid product id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidStock          = errors.New("invalid stock")
	ErrForbidden             = errors.New("only sellers and admins manage products")

	ErrProductNotFound = errors.New("product not found")
)

// Причины неприменённого списания.
const (
	ReasonInvalidQuantity = "invalid_quantity"
	ReasonInvalidProduct  = "invalid_product_id"
	ReasonNotFound        = "product_not_found"
	ReasonStorageError    = "storage_error"
)
