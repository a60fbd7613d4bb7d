package errors

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidTopic    = errors.New("invalid topic")
	ErrOriginNotActive = errors.New("origin soulprint not active")
	ErrTargetNotFound  = errors.New("target soulprint not found")
)
