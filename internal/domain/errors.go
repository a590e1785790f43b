package domain

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrInvalidSortKey = errors.New("invalid sort key")
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidShare   = errors.New("invalid share request")
	ErrInvalidTheme   = errors.New("invalid theme")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidPeriod  = errors.New("invalid retention period")
	ErrInvalidRequest = errors.New("invalid request")
	ErrAlreadyExists  = errors.New("record already exists")
)
