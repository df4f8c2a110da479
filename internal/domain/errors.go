package domain

import "errors"

var (
	// ErrInvalidInterval возвращается для интервала с end <= start
	ErrInvalidInterval = errors.New("domain: invalid time interval")
)
