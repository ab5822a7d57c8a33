package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultWindow is the fallback frequency window used when none is
	// provided.
	DefaultWindow = "1w"
)

var windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)\s*$`)

// ParseWindowDays parses a human-friendly window ("7", "7d", "1w", "2 weeks")
// into a whole number of trailing calendar days. The frequency views count
// whole days, so sub-day units are not accepted.
func ParseWindowDays(input string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	matches := windowPattern.FindStringSubmatch(trimmed)
	if matches == nil {
		return 0, fmt.Errorf("timeutil: invalid window %q", input)
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("timeutil: invalid window value %q: %w", matches[1], err)
	}

	switch matches[2] {
	case "", "d", "day", "days":
		// value is already days
	case "w", "wk", "wks", "week", "weeks":
		value *= 7
	default:
		return 0, fmt.Errorf("timeutil: unsupported window unit %q", matches[2])
	}

	if value <= 0 {
		return 0, fmt.Errorf("timeutil: window must cover at least one day")
	}
	return value, nil
}

// FormatWindowDays renders a day count using week/day tokens ("1w2d").
func FormatWindowDays(days int) string {
	if days <= 0 {
		return "0d"
	}
	weeks := days / 7
	rest := days % 7
	switch {
	case weeks == 0:
		return fmt.Sprintf("%dd", rest)
	case rest == 0:
		return fmt.Sprintf("%dw", weeks)
	default:
		return fmt.Sprintf("%dw%dd", weeks, rest)
	}
}
