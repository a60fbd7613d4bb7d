package errors

import "errors"

var (
	ErrInvalidDimensions = errors.New("patterns and contexts must both be greater than 1")
	ErrEvidenceDimension = errors.New("evidence length does not match context count")
	ErrPriorDimension    = errors.New("prior length does not match pattern count")
)
