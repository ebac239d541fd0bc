package errors

import (
	"slices"
	"strings"
	"unicode"
)

// maxNameLength bounds meal names read from catalogs or HTTP requests.
const maxNameLength = 256

// ValidateMealName checks a meal name coming from an external source.
// Empty names are allowed; they are legal placeholders.
//
// Rejected:
//   - Names longer than 256 bytes
//   - Control characters (newlines would break the one-per-line output)
func ValidateMealName(name string) error {
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "meal name too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "meal name contains control characters: %q", name)
		}
	}
	return nil
}

// ValidateChoice checks that value is one of allowed (case-insensitive).
// It returns the normalized lowercase value.
func ValidateChoice(code Code, kind, value string, allowed []string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if slices.Contains(allowed, v) {
		return v, nil
	}
	return "", New(code, "invalid %s: %q (must be one of %s)", kind, value, strings.Join(allowed, ", "))
}
