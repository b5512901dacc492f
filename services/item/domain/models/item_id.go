package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseItemID parses an id transmitted as text using leading-numeric-prefix
// semantics, kept compatible with the lenient parsing the HTTP boundary has
// always exposed: surrounding whitespace is ignored, an optional sign is
// consumed, then digits are read until the first non-digit character. So
// "1abc" parses to 1, "0x123" to 0, " 5 " to 5, and "3.7" truncates to 3.
// Leading zeros are allowed ("007" parses to 7).
//
// A string with no leading digits fails. Digit runs that overflow int64 also
// fail; unlike a float-based runtime there is no lossy widening to fall back
// on, so the accepted range is bounded by int64.
func ParseItemID(raw string) (int64, error) {
	s := strings.TrimSpace(raw)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, fmt.Errorf("no numeric prefix in %q", raw)
	}

	id, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", raw, err)
	}
	return id, nil
}
