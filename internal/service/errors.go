package service

import "errors"

// Common errors returned by the services
var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrProductNotFound  = errors.New("product not found")
	ErrItemNotFound     = errors.New("item not found in cart")
	ErrCustomerRequired = errors.New("name and email are required")
	ErrEmptyCart        = errors.New("cart is empty")
)
