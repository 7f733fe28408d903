package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrProductUnavailable = errors.New("product no longer available")
	ErrPaymentResolved    = errors.New("payment already resolved")
)
