package middleware

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValidateTopic validates a presentation topic. The topic must be non-empty
// after trimming whitespace.
func ValidateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return errors.New("topic cannot be empty")
	}
	if len(topic) > 512 {
		return errors.New("topic exceeds maximum length")
	}
	if !utf8.ValidString(topic) {
		return errors.New("topic must be valid UTF-8")
	}
	return nil
}

// ValidateDeckID validates a deck identifier.
func ValidateDeckID(id string) error {
	if id == "" {
		return errors.New("deck ID cannot be empty")
	}
	if len(id) > 128 {
		return errors.New("deck ID exceeds maximum length")
	}
	return nil
}

// ValidateSlideIndex parses and validates a slide index path parameter.
func ValidateSlideIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil || index < 1 {
		return 0, errors.New("slide index must be a positive integer")
	}
	return index, nil
}

// ValidateFreeText bounds an optional free-text field.
func ValidateFreeText(name, value string) error {
	if len(value) > 2048 {
		return errors.New(name + " exceeds maximum length")
	}
	if !utf8.ValidString(value) {
		return errors.New(name + " must be valid UTF-8")
	}
	return nil
}
