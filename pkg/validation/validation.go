package validation

import (
	"regexp"
	"strings"
	"time"
)

// ISODateLayout is the calendar date format used across the add-on
const ISODateLayout = "2006-01-02"

var coordRegex = regexp.MustCompile(`^-?\d+(\.\d+)?,-?\d+(\.\d+)?$`)

// IsISODate reports whether s parses as a YYYY-MM-DD calendar date
func IsISODate(s string) bool {
	_, err := time.Parse(ISODateLayout, strings.TrimSpace(s))
	return err == nil
}

// IsCoordinate reports whether s looks like a "lat,lon" pair
func IsCoordinate(s string) bool {
	return coordRegex.MatchString(strings.TrimSpace(s))
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
