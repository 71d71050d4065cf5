package model

import (
	"strconv"
	"strings"
)

// RangeFilter is an inclusive numeric bound. A nil side is unbounded.
type RangeFilter struct {
	Min *int
	Max *int
}

// ParseRange builds a RangeFilter from raw query values. Each value is read
// up to its first non-digit, so "10.5" and "10abc" both bound at 10. Values
// with no leading integer leave that side unbounded.
func ParseRange(lo, hi string) RangeFilter {
	return RangeFilter{Min: parseBound(lo), Max: parseBound(hi)}
}

func parseBound(raw string) *int {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return nil
	}
	return &n
}

func (f RangeFilter) IsEmpty() bool {
	return f.Min == nil && f.Max == nil
}

func (f RangeFilter) Contains(v float64) bool {
	if f.Min != nil && v < float64(*f.Min) {
		return false
	}
	if f.Max != nil && v > float64(*f.Max) {
		return false
	}
	return true
}
