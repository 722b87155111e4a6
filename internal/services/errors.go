package services

import (
	"errors"
	"fmt"
)

// Resolution and input failures surface as 4xx; anything else is an
// external API failure and surfaces as 5xx.
var (
	ErrMissingInput         = errors.New("Channel URL is required")
	ErrInvalidURL           = errors.New("Invalid YouTube URL format")
	ErrUnsupportedURLFormat = errors.New("Please use the channel URL with @ handle or channel ID")
	ErrChannelNotFound      = errors.New("Channel not found")
)

// ApiError wraps a failed YouTube Data API call with the operation that
// failed, for diagnostics in logs and 500 responses.
type ApiError struct {
	Op  string
	Err error
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("youtube %s: %s", e.Op, e.Err)
}

func (e *ApiError) Unwrap() error {
	return e.Err
}
