package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const canonicalDateLayout = "2006-01-02"

// Layouts tried in order when the input is not already canonical.
// Inputs carrying a zone are converted to the UTC calendar date.
var dateLayouts = []string{
	canonicalDateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2006/01/02",
	"01/02/2006",
}

var (
	timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// NormalizeDate converts a date string to the canonical YYYY-MM-DD form.
// A value already in canonical form passes through unchanged; other
// recognized layouts are parsed and converted to the UTC calendar date.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", newValidationError("date", "is required")
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t.UTC().Format(canonicalDateLayout), nil
	}
	return "", newValidationError("date", fmt.Sprintf("unrecognized date %q", s))
}

// NormalizeTime validates an H:mm or HH:mm time string and returns the
// zero-padded HH:mm form. The minute must be exactly two digits; hour
// 0-23, minute 0-59.
func NormalizeTime(s string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", newValidationError("time", "must match H:mm or HH:mm")
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 {
		return "", newValidationError("time", "hour must be between 0 and 23")
	}
	if minute > 59 {
		return "", newValidationError("time", "minute must be between 0 and 59")
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// NormalizeEmail trims and lower-cases an email address and validates
// the basic local@domain.tld shape.
func NormalizeEmail(s string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(s))
	if !emailRegexp.MatchString(email) {
		return "", newValidationError("email", "invalid email format")
	}
	return email, nil
}
