// Package normalize converts the free-text time, memory, language and
// status values found on judge pages into canonical numeric or enumerated
// forms. All parsers are total: they return a zero value with ok=false (or
// a typed error) instead of panicking, because the input text comes from
// third-party markup and is inherently unreliable.
package normalize

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// fold maps full-width digits and punctuation to their half-width forms.
// Chinese judge pages occasionally render numbers and colons full-width.
func fold(s string) string {
	return width.Fold.String(s)
}

// TimeToMS parses a judge-reported duration into integer milliseconds.
// "100ms" and bare "100" are milliseconds, "0.2s" is seconds. Fractions
// truncate toward zero. ok is false for empty or non-numeric input.
func TimeToMS(s string) (ms int, ok bool) {
	txt := strings.TrimSpace(fold(s))
	if txt == "" {
		return 0, false
	}
	lower := strings.ToLower(txt)
	switch {
	case strings.Contains(lower, "ms"):
		return parseTruncated(strings.ReplaceAll(lower, "ms", ""), 1)
	case strings.Contains(lower, "s"):
		return parseTruncated(strings.ReplaceAll(lower, "s", ""), 1000)
	default:
		return parseTruncated(lower, 1)
	}
}

// MemToKB parses a judge-reported memory figure into integer kibibytes.
// Suffixes are checked in priority order: mb/m multiply by 1024, kb/k pass
// through, a plain trailing b divides by 1024. A bare number is taken as
// already being kibibytes, which is what the older judge pages emit.
func MemToKB(s string) (kb int, ok bool) {
	txt := strings.TrimSpace(fold(s))
	if txt == "" {
		return 0, false
	}
	lower := strings.ToLower(txt)
	switch {
	case strings.HasSuffix(lower, "mb"), strings.HasSuffix(lower, "m"):
		num := strings.TrimSuffix(strings.TrimSuffix(lower, "mb"), "m")
		return parseTruncated(num, 1024)
	case strings.HasSuffix(lower, "kb"), strings.HasSuffix(lower, "k"):
		num := strings.TrimSuffix(strings.TrimSuffix(lower, "kb"), "k")
		return parseTruncated(num, 1)
	case strings.HasSuffix(lower, "b"):
		num := strings.TrimSuffix(lower, "b")
		return parseTruncated(num, 1.0/1024.0)
	default:
		return parseTruncated(lower, 1)
	}
}

// parseTruncated parses num as a float, scales it, and truncates to int.
func parseTruncated(num string, scale float64) (int, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, false
	}
	return int(v * scale), true
}
