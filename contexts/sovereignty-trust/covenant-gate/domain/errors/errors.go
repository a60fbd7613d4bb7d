package errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrActorNotFound    = errors.New("actor not found")
	ErrNoTrustRecord    = errors.New("no trust mark found for actor")
	ErrTierNotPermitted = errors.New("actor tier not permitted to execute")

	ErrRepositoryInvariantBroke = errors.New("repository invariant broke")
)
