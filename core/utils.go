package core

import (
	"strings"
	"time"
)

// DateFormat is the layout of all user-facing date strings (join dates,
// due dates, submission dates).
const DateFormat = "2006-01-02"

// NowFunc returns the current time; swapped out in tests.
var NowFunc = time.Now

// Today returns the current date as a DateFormat string.
func Today() string {
	return NowFunc().Format(DateFormat)
}

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ContainsInt reports whether `n` is a member of `ns`.
func ContainsInt(ns []int, n int) bool {
	for _, v := range ns {
		if v == n {
			return true
		}
	}
	return false
}
