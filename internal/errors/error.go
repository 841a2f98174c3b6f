package errors

import (
	"errors"
)

var (
	ErrEmptyAuth         = errors.New("missing authorization")
	ErrEmptySubject      = errors.New("missing subject")
	ErrTokenInvalid      = errors.New("invalid token")
	ErrUserNotFound      = errors.New("user is not found")
	ErrUserAlreadyExist  = errors.New("user already exist")
	ErrWrongPassword     = errors.New("wrong password")
	ErrProductNotFound   = errors.New("product is not found")
	ErrProductExist      = errors.New("product already exist")
	ErrInsufficientStock = errors.New("insufficient product stock")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrOrderNotFound     = errors.New("order is not found")
	ErrCartItemNotFound  = errors.New("cart item is not found")
)
