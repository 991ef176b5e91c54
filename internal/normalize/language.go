package normalize

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/ojtools/ojextract/internal/model"
)

// LangMode selects how unrecognized language text is handled.
type LangMode int

const (
	// LangModeLenient classifies heuristically and falls back to C++17 for
	// anything it cannot place. This matches what the browser agent ships.
	LangModeLenient LangMode = iota
	// LangModeStrict accepts only exact canonical tokens ("cpp17",
	// "cpp11-clang", ...) and reports ErrUnknownLanguage otherwise.
	LangModeStrict
)

// ErrUnknownLanguage is reported by strict-mode parsing for text that is
// not an exact canonical language token.
var ErrUnknownLanguage = errors.New("unknown language")

// langRule pairs a predicate over the canonical form with the language it
// selects. Rules are evaluated in order; the first match wins, so the more
// specific toolchain variants come before the plain versions.
type langRule struct {
	match func(c string) bool
	lang  model.Language
}

func hasAll(c string, needles ...string) bool {
	for _, n := range needles {
		if !strings.Contains(c, n) {
			return false
		}
	}
	return true
}

var langRules = []langRule{
	{func(c string) bool { return hasAll(c, "cpp", "clang", "17") }, model.LangCpp17Clang},
	{func(c string) bool { return hasAll(c, "cpp", "clang") }, model.LangCpp11Clang},
	{func(c string) bool { return hasAll(c, "cpp", "noilinux", "11") }, model.LangCpp11NoiLinux},
	{func(c string) bool { return hasAll(c, "cpp", "noilinux") }, model.LangCppNoiLinux},
	{func(c string) bool { return hasAll(c, "cpp", "17") }, model.LangCpp17},
	{func(c string) bool { return hasAll(c, "cpp", "14") }, model.LangCpp14},
	{func(c string) bool { return hasAll(c, "cpp", "11") }, model.LangCpp11},
	{func(c string) bool { return hasAll(c, "cpp") }, model.LangCpp},
	{func(c string) bool { return isPlainC(c) && hasAll(c, "noilinux") }, model.LangCNoiLinux},
	{isPlainC, model.LangC},
}

// isPlainC reports whether the canonical text looks like C rather than C#
// or another c-containing language name.
func isPlainC(c string) bool {
	return strings.Contains(c, "c") && !strings.Contains(c, "c#") && !strings.Contains(c, "cs")
}

// canonicalTokens is the strict-mode whitelist; keys are canonical forms of
// the wire language strings.
var canonicalTokens = map[string]model.Language{
	"cpp14":         model.LangCpp14,
	"cpp17":         model.LangCpp17,
	"cpp11":         model.LangCpp11,
	"cpp":           model.LangCpp,
	"cppnoilinux":   model.LangCppNoiLinux,
	"cpp11noilinux": model.LangCpp11NoiLinux,
	"cpp11clang":    model.LangCpp11Clang,
	"cpp17clang":    model.LangCpp17Clang,
	"c":             model.LangC,
	"cnoilinux":     model.LangCNoiLinux,
}

// canonLang lowercases, folds width, rewrites "c++" to "cpp", and strips
// whitespace and separator punctuation, so "C++17 (O2)" becomes "cpp17o2"
// and "C++11 NOI Linux" becomes "cpp11noilinux". '#' is kept so C# stays
// distinguishable from C.
func canonLang(s string) string {
	t := strings.ToLower(width.Fold.String(strings.TrimSpace(s)))
	t = strings.ReplaceAll(t, "c++", "cpp")
	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '+', '-', '_', '.', '(', ')', ':', ',', '/':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseLanguage classifies free-form language text. Lenient mode never
// fails: unmatched text (and empty input) maps to C++17. Strict mode
// requires an exact canonical token and reports ErrUnknownLanguage for
// anything else, including empty input.
func ParseLanguage(s string, mode LangMode) (model.Language, error) {
	c := canonLang(s)
	if mode == LangModeStrict {
		if lang, ok := canonicalTokens[c]; ok {
			return lang, nil
		}
		return model.DefaultLanguage, ErrUnknownLanguage
	}
	if c == "" {
		return model.DefaultLanguage, nil
	}
	for _, r := range langRules {
		if r.match(c) {
			return r.lang, nil
		}
	}
	return model.DefaultLanguage, nil
}
