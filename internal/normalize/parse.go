// Package normalize converts raw survey answers into canonical values:
// numeric parsers for the experience/salary/bonus bracket answers and
// ordered rule-table categorizers for the free-text fields.
//
// Every function is total. Survey data is messy (typos, free text,
// inconsistent formatting), so malformed input maps to 0 or a fallback
// label instead of an error.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// Representative values for the open-ended brackets. They are deliberately
// approximate so that "Moins de 30k€" and "Plus de 100k€" answers can still
// enter mean/median computation. Changing them changes published statistics.
const (
	salaryUnderFloor = 29000  // "Moins de 30k€"
	salaryOverCeil   = 101000 // "Plus de 100k€"
	primeUnderFloor  = 1000   // "Moins de 2k€"
	primeOverCeil    = 11000  // "Plus de 10k€"
)

var rangePattern = regexp.MustCompile(`(\d+)-(\d+)`)

// ParseExperience parses a years-of-experience answer. Ranges like "2-4"
// resolve to the midpoint rounded up (ceil(3) = 3, "5-10" → 8). A trailing
// "+" is ignored ("10+" → 10). Unparseable input returns 0.
func ParseExperience(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.Contains(s, "+") {
		return leadingInt(s)
	}
	if m := rangePattern.FindStringSubmatch(s); m != nil {
		lo, hi := leadingInt(m[1]), leadingInt(m[2])
		return (lo + hi + 1) / 2 // ceil of the midpoint
	}
	return leadingInt(s)
}

// ParseSalaryRange converts a salary bracket label into a representative
// annual amount in euros. Bracket bounds are given in thousands
// ("30-35k€" → 32500). The open-ended brackets map to fixed constants.
// A result of 0 means unparseable/missing and must be excluded from any
// statistic that divides by the count of present values.
func ParseSalaryRange(s string) int {
	if s == "" {
		return 0
	}
	clean := cleanLabel(s)

	if strings.Contains(clean, "moins") {
		return salaryUnderFloor
	}
	if strings.Contains(clean, "plus") {
		return salaryOverCeil
	}

	if m := rangePattern.FindStringSubmatch(clean); m != nil {
		lo, hi := leadingInt(m[1]), leadingInt(m[2])
		return (lo*1000 + hi*1000) / 2
	}
	return 0
}

// ParsePrime converts a bonus bracket label into annual euros. "Aucune" and
// "0" are an explicit zero; like missing answers they contribute 0
// downstream.
func ParsePrime(s string) int {
	if s == "" {
		return 0
	}
	clean := cleanLabel(s)

	if strings.Contains(clean, "aucune") || clean == "0" {
		return 0
	}
	if strings.Contains(clean, "moins") {
		return primeUnderFloor
	}
	if strings.Contains(clean, "plus") {
		return primeOverCeil
	}

	if m := rangePattern.FindStringSubmatch(clean); m != nil {
		lo, hi := leadingInt(m[1]), leadingInt(m[2])
		return (lo*1000 + hi*1000) / 2
	}
	return 0
}

// ParseYear parses a graduation-year answer from its leading digits
// ("2019" → 2019, "2019 (reconversion)" → 2019). No digits → 0.
func ParseYear(s string) int {
	return leadingInt(s)
}

// SalaryLabel normalizes a bracket label for exact comparison: lowercase,
// whitespace stripped, en/em dashes folded to "-". Histogram bucketing
// compares normalized labels, not numeric ranges.
func SalaryLabel(s string) string {
	return cleanLabel(s)
}

func cleanLabel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsSpace(r):
			// dropped
		case r == '–' || r == '—': // – —
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// leadingInt parses the leading decimal digits of s, skipping anything
// after them ("10+" → 10, "12abc" → 12). No digits → 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}
