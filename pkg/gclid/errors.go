package gclid

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the token is empty after trimming whitespace.
var ErrEmptyInput = errors.New("no GCLID provided")

// DecodeError reports a token that is not valid URL-safe base64.
type DecodeError struct {
	// Token is the padded string that failed to decode.
	Token string

	// Err is the underlying decoder error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding token: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
