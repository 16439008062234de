package suite

import "errors"

var (
	ErrUnknownCalculator = errors.New("unknown calculator")
	ErrBadPayload        = errors.New("invalid request payload")
)
