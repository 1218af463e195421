package domain

import "errors"

var (
	ErrInvalidDateFormat    = errors.New("invalid date format")
	ErrInvalidPropertyValue = errors.New("property value is not a comparable number")
	ErrInvalidGracePeriod   = errors.New("grace period must be a non-negative day count")
	ErrInvalidRequest       = errors.New("invalid request")
)
