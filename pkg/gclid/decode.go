// Package gclid decodes click identifier tokens into raw bytes.
package gclid

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// Normalize trims surrounding whitespace from user input.
// Returns ErrEmptyInput if nothing is left.
func Normalize(input string) (string, error) {
	token := strings.TrimSpace(input)
	if token == "" {
		return "", ErrEmptyInput
	}
	return token, nil
}

// Length returns the character length of a token.
func Length(token string) int {
	return utf8.RuneCountInString(token)
}

// Pad appends the minimum number of '=' characters so that the length of s
// is a multiple of 4.
func Pad(s string) string {
	if rem := len(s) % 4; rem != 0 {
		return s + strings.Repeat("=", 4-rem)
	}
	return s
}

// Decode pads the token and decodes it with the URL-safe base64 alphabet.
// Any failure is returned as a *DecodeError.
func Decode(token string) ([]byte, error) {
	// The base64 decoder skips CR and LF; they are not part of the alphabet.
	if i := strings.IndexAny(token, "\r\n"); i >= 0 {
		return nil, &DecodeError{Token: token, Err: base64.CorruptInputError(i)}
	}

	padded := Pad(token)
	raw, err := base64.URLEncoding.DecodeString(padded)
	if err != nil {
		return nil, &DecodeError{Token: padded, Err: err}
	}
	return raw, nil
}

// Encode returns the padded URL-safe base64 form of raw.
func Encode(raw []byte) string {
	return base64.URLEncoding.EncodeToString(raw)
}
