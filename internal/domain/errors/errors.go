package errors

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrMissingOrderID  = errors.New("missing order id")
	ErrVersionConflict = errors.New("version conflict")
)
