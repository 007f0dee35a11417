package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseInt converts a tabular cell to an int.
// It accepts plain integers and integral floats ("21.0"), as written by
// spreadsheet tools. ok is false for empty, non-numeric or out-of-range cells.
func ParseInt(cell string) (n int, ok bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err == nil {
		return i, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// ToBool converts a tabular cell to a bool.
// "1", "true" and "yes" (any case) are true; everything else, including empty, is false.
func ToBool(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// FormatBool renders a bool the way the session sheet stores it.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
