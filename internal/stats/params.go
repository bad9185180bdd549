package stats

import (
	"strconv"
)

// Defaults applied when a caller-supplied parameter is missing,
// non-numeric, or not a positive integer. Malformed values are never
// an error; the default silently applies.
const (
	DefaultLimit uint64 = 10
	DefaultDays  int    = 7
)

// ListOptions bounds list-shaped operations (upcoming, recent activity)
type ListOptions struct {
	Limit uint64
}

// TrendOptions sets the trailing window for the productivity trend
type TrendOptions struct {
	Days int
}

// ParseListOptions builds ListOptions from a raw query-string value
func ParseListOptions(rawLimit string) ListOptions {
	opts := ListOptions{Limit: DefaultLimit}
	if n, err := strconv.Atoi(rawLimit); err == nil && n > 0 {
		opts.Limit = uint64(n)
	}
	return opts
}

// ParseTrendOptions builds TrendOptions from a raw query-string value
func ParseTrendOptions(rawDays string) TrendOptions {
	opts := TrendOptions{Days: DefaultDays}
	if n, err := strconv.Atoi(rawDays); err == nil && n > 0 {
		opts.Days = n
	}
	return opts
}
