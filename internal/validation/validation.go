// Package validation checks raw chat input before it reaches the pipeline.
package validation

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrQueryEmpty is returned when the query is empty or whitespace-only after trim.
var ErrQueryEmpty = errors.New("query is required")

// ErrQueryTooLong is returned when the query exceeds the maximum length in runes.
var ErrQueryTooLong = errors.New("query too long")

// ErrQueryInvalidChars is returned for invalid UTF-8 or control characters.
var ErrQueryInvalidChars = errors.New("query contains invalid characters")

// ValidateQuery trims input and enforces maxLen (runes, 0 disables). Any printable text is
// allowed; deciding whether it names a city is the extractor's job.
func ValidateQuery(input string, maxLen int) (string, error) {
	if !utf8.ValidString(input) {
		return "", ErrQueryInvalidChars
	}
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrQueryEmpty
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		return "", ErrQueryTooLong
	}
	for _, r := range s {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return "", ErrQueryInvalidChars
		}
	}
	return s, nil
}
