package grocery

import "errors"

var (
	ErrGroceryNotFound  = errors.New("grocery not found")
	ErrNameRequired     = errors.New("grocery name must not be empty")
	ErrQuantityNegative = errors.New("quantity must not be negative")
	ErrUnknownList      = errors.New("unknown list")
)
