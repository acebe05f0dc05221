package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalid            = errors.New("invalid")
	ErrRateLimited        = errors.New("rate limited")
	ErrDataUnavailable    = errors.New("data unavailable")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// RateLimitedError carries the wait hint for a rejected admission.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry in %s", e.RetryAfter.Round(time.Second))
}

func (e *RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}
