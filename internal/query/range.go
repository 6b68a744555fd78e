// Package query encodes search filters as URL query values.
package query

import (
	"strconv"
	"strings"
)

// Range is an inclusive integer range filter, written "min,max" in a query
// string. A single value "n" means exactly n.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FormatRange returns the query value of r, or nil when r is nil.
func FormatRange(r *Range) *string {
	if r == nil {
		return nil
	}
	s := strconv.Itoa(r.Min)
	if r.Min != r.Max {
		s += "," + strconv.Itoa(r.Max)
	}
	return &s
}

// ParseRange reads "n" or "min,max" written in canonical decimal form, the
// form FormatRange produces. Signs other than a leading "-", spaces, leading
// zeros and min > max yield nil.
func ParseRange(s string) *Range {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return nil
	}
	lo, ok := canonicalInt(parts[0])
	if !ok {
		return nil
	}
	if len(parts) == 1 {
		return &Range{Min: lo, Max: lo}
	}
	hi, ok := canonicalInt(parts[1])
	if !ok || lo > hi {
		return nil
	}
	return &Range{Min: lo, Max: hi}
}

func canonicalInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return 0, false
	}
	return n, true
}
