package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatWeight prints whole numbers without decimals and everything else
// rounded to two places ("60", "62.5", "0.33").
func FormatWeight(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded == math.Trunc(rounded) {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// FormatVolume abbreviates large volumes ("12.3k").
func FormatVolume(v float64) string {
	if v >= 10000 {
		return fmt.Sprintf("%.1fk", v/1000)
	}
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}

// Signed prefixes non-negative weights with a plus sign.
func Signed(v float64) string {
	if v >= 0 {
		return "+" + FormatWeight(v)
	}
	return FormatWeight(v)
}
