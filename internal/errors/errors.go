package gerr

import "errors"

var (
	ErrStoreUnavailable = errors.New("order store unavailable")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidOrder     = errors.New("invalid order")
	ErrInvalidWindow    = errors.New("invalid sales window")
)
