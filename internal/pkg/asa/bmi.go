package asa

import (
	"math"
	"strconv"
	"strings"
)

// ParseMeasurement reads the leading decimal of a raw questionnaire answer,
// so "72.5", "72,5" and "72.5 kg" all give 72.5. Trailing text is ignored.
// It reports false when no decimal leads the answer or the value is not a
// finite, strictly positive number.
func ParseMeasurement(raw string) (float64, bool) {
	value := leadingDecimal(strings.TrimSpace(raw))
	if value == "" {
		return 0, false
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) || number <= 0 {
		return 0, false
	}
	return number, true
}

// leadingDecimal returns the longest prefix of s shaped like
// [sign] digits [("." | ",") digits] [("e" | "E") [sign] digits], with a
// comma rewritten to a point. Hex and underscore forms never match.
func leadingDecimal(s string) string {
	var b strings.Builder
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		b.WriteByte(s[i])
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		b.WriteByte(s[i])
		i++
		digits++
	}
	if i < len(s) && (s[i] == '.' || s[i] == ',') {
		fraction := i + 1
		for fraction < len(s) && isDigit(s[fraction]) {
			fraction++
		}
		if fraction > i+1 || digits > 0 {
			b.WriteByte('.')
			b.WriteString(s[i+1 : fraction])
			digits += fraction - i - 1
			i = fraction
		}
	}
	if digits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		exponent := i + 1
		if exponent < len(s) && (s[exponent] == '+' || s[exponent] == '-') {
			exponent++
		}
		end := exponent
		for end < len(s) && isDigit(s[end]) {
			end++
		}
		if end > exponent {
			b.WriteString(s[i:end])
		}
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// BMI is weight over squared height in meters. Any non-positive or
// non-finite input, or a quotient that is not finite, yields 0.
func BMI(weightKg, heightCm float64) float64 {
	if !positiveFinite(weightKg) || !positiveFinite(heightCm) {
		return 0
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	if !positiveFinite(bmi) {
		return 0
	}
	return bmi
}

// ComputeBMI parses both raw answers and returns 0 when either is unusable.
func ComputeBMI(weightKg, heightCm string) float64 {
	weight, ok := ParseMeasurement(weightKg)
	if !ok {
		return 0
	}
	height, ok := ParseMeasurement(heightCm)
	if !ok {
		return 0
	}
	return BMI(weight, height)
}

// RoundBMI rounds to one decimal place, the precision shown on reports.
func RoundBMI(bmi float64) float64 {
	return math.Round(bmi*10) / 10
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
