package errors

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrSoulprintNotFound = errors.New("soulprint not found")
	ErrSoulprintInactive = errors.New("soulprint inactive")
)
