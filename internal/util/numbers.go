package util

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// grouped thousands first ("1,299", "1.299,00"), then plain numbers with an optional short fraction
	intGroupPattern = regexp.MustCompile(`\d{1,3}(?:[,.]\d{3})+(?:[.,]\d{1,2})?|\d+(?:[.,]\d{1,2})?`)
	floatPattern    = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	fractionSuffix  = regexp.MustCompile(`[.,]\d{1,2}$`)
)

// ExtractInts returns every digit group of the input as an integer. Thousands
// separators are dropped and fractional parts truncated.
func ExtractInts(input string) []int {
	line := strings.ReplaceAll(input, " ", " ")
	matches := intGroupPattern.FindAllString(line, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		if v, ok := parseIntToken(m); ok {
			out = append(out, v)
		}
	}
	return out
}

// FirstFloat returns the first decimal number of the input, accepting either
// a dot or a comma as the decimal mark.
func FirstFloat(input string) *float64 {
	m := floatPattern.FindString(input)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(normalizeNumericToken(m), 64)
	if err != nil {
		return nil
	}
	return &v
}

func FirstInt(input string) *int {
	m := floatPattern.FindString(input)
	if m == "" {
		return nil
	}
	v, ok := parseIntToken(m)
	if !ok {
		return nil
	}
	return &v
}

// ParseFloat parses one numeric token such as "3,5" or "1800".
func ParseFloat(token string) (float64, bool) {
	v, err := strconv.ParseFloat(normalizeNumericToken(strings.TrimSpace(token)), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseIntToken(token string) (int, bool) {
	compact := fractionSuffix.ReplaceAllString(token, "")
	compact = strings.NewReplacer(",", "", ".", "").Replace(compact)
	v, err := strconv.Atoi(compact)
	if err != nil {
		return 0, false
	}
	return v, true
}

func normalizeNumericToken(token string) string {
	compact := strings.ReplaceAll(token, " ", "")
	if strings.Contains(compact, ",") && !strings.Contains(compact, ".") {
		return strings.ReplaceAll(compact, ",", ".")
	}
	return strings.ReplaceAll(compact, ",", "")
}

// Round rounds to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
