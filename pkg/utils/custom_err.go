package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidCredential   = errors.New("invalid or missing API credential")
	ErrRateLimited         = errors.New("upstream rate limit exceeded")
	ErrMalformedResponse   = errors.New("malformed model response")
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")
	ErrSessionNotFound     = errors.New("session not found")
	ErrHistoryItemNotFound = errors.New("history item not found")
	ErrDatabaseError       = errors.New("database error")
)
