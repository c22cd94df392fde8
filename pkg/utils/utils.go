package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NormalizeTags trims every tag, drops empty ones and removes duplicates while
// preserving first-occurrence order. When fold is true duplicates are matched
// case-insensitively and the first spelling wins.
func NormalizeTags(tags []string, fold bool) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}

		key := t
		if fold {
			key = strings.ToLower(t)
		}
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, t)
	}

	return out
}

// ValidateText trims s and returns an error if it is empty (when required) or
// longer than max runes.
func ValidateText(field, s string, required bool, max int) (string, error) {
	s = strings.TrimSpace(s)
	if required && s == "" {
		return "", fmt.Errorf("%s cannot be empty", field)
	}

	if max > 0 && utf8.RuneCountInString(s) > max {
		return "", fmt.Errorf("%s must be at most %d characters", field, max)
	}

	return s, nil
}

// ValidateHandle returns an error if the given social handle is invalid.
// Handles may start with "@" which is stripped.
func ValidateHandle(field, handle string) (string, error) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return "", nil
	}

	if utf8.RuneCountInString(handle) > 39 {
		return "", fmt.Errorf("%s must be at most 39 characters", field)
	}

	for _, r := range handle {
		if !isHandleRune(r) {
			return "", fmt.Errorf("%s can only contain letters, numbers, hyphens, and underscores", field)
		}
	}

	return handle, nil
}

func isHandleRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
