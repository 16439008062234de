package share

import "errors"

var (
	ErrNoSecret     = errors.New("share: secret is not configured")
	ErrInvalidToken = errors.New("share: invalid or expired token")
)
