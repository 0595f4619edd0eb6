package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Access code pattern - uppercase alphanumeric, 6 to 12 characters
	CodePattern = `^[A-Z0-9]{6,12}$`

	// Device identifiers are client-supplied opaque tokens. They are trusted
	// verbatim apart from a presence check and an upper length bound.
	DeviceIDMaxLength = 128

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Code *regexp.Regexp
}{
	Code: regexp.MustCompile(CodePattern),
}

// IsValidCode reports whether value matches the access code format.
func IsValidCode(value string) bool {
	return CompiledPatterns.Code.MatchString(strings.TrimSpace(value))
}

// IsValidDeviceID reports whether value is acceptable as a device identifier.
func IsValidDeviceID(value string) bool {
	value = strings.TrimSpace(value)
	return value != "" && len(value) <= DeviceIDMaxLength
}

// IsValidName reports whether value is acceptable as a student name.
func IsValidName(value string) bool {
	length := len(strings.TrimSpace(value))
	return length >= NameMinLength && length <= NameMaxLength
}
