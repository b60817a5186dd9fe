package models

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrStorageUnavailable   = errors.New("storage unavailable")
	ErrInvalidPath          = errors.New("invalid storage path")
	ErrNotFound             = errors.New("not found")
	ErrWriteRejected        = errors.New("write rejected")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrInvalidStatus        = errors.New("invalid order status")
)
