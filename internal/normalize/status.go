package normalize

import (
	"strings"
	"unicode"

	"github.com/ojtools/ojextract/internal/model"
)

// statusTable maps normalized verdict text to the canonical Status. It is
// an ordered list rather than a map so that site-specific synonyms can be
// appended without disturbing earlier entries; the first match wins.
// Entries cover the English verdicts and the Chinese forms used by luogu
// and xinyoudui.
var statusTable = []struct {
	token  string
	status model.Status
}{
	{"accepted", model.StatusAccepted},
	{"通过", model.StatusAccepted},
	{"wronganswer", model.StatusWrongAnswer},
	{"答案错误", model.StatusWrongAnswer},
	{"partiallycorrect", model.StatusPartiallyCorrect},
	{"部分正确", model.StatusPartiallyCorrect},
	{"runtimeerror", model.StatusRuntimeError},
	{"运行时错误", model.StatusRuntimeError},
	{"运行错误", model.StatusRuntimeError},
	{"compileerror", model.StatusCompileError},
	{"编译错误", model.StatusCompileError},
	{"timelimitexceeded", model.StatusTimeLimitExceeded},
	{"超时", model.StatusTimeLimitExceeded},
	{"时间超限", model.StatusTimeLimitExceeded},
	{"memorylimitexceeded", model.StatusMemoryLimitExceeded},
	{"内存超限", model.StatusMemoryLimitExceeded},
	{"unknown", model.StatusUnknown},
	{"未知", model.StatusUnknown},
}

// ParseStatus classifies free-form verdict text. Unrecognized text maps to
// Unknown; this never fails, because a missing verdict must not abort an
// otherwise successful extraction.
func ParseStatus(s string) model.Status {
	norm := normStatus(s)
	if norm == "" {
		return model.StatusUnknown
	}
	for _, e := range statusTable {
		if norm == e.token {
			return e.status
		}
	}
	return model.StatusUnknown
}

// normStatus folds width, lowercases, and drops all whitespace so that
// "Wrong Answer", "wrong  answer" and "WrongAnswer" compare equal.
func normStatus(s string) string {
	t := strings.ToLower(fold(s))
	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
