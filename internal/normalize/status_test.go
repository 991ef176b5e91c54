package normalize

import (
	"testing"

	"github.com/ojtools/ojextract/internal/model"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want model.Status
	}{
		{"Accepted", model.StatusAccepted},
		{"accepted", model.StatusAccepted},
		{"通过", model.StatusAccepted},
		{"Wrong Answer", model.StatusWrongAnswer},
		{"WrongAnswer", model.StatusWrongAnswer},
		{"答案错误", model.StatusWrongAnswer},
		{"Partially Correct", model.StatusPartiallyCorrect},
		{"部分正确", model.StatusPartiallyCorrect},
		{"Runtime Error", model.StatusRuntimeError},
		{"运行时错误", model.StatusRuntimeError},
		{"Compile Error", model.StatusCompileError},
		{"编译错误", model.StatusCompileError},
		{"Time Limit Exceeded", model.StatusTimeLimitExceeded},
		{"时间超限", model.StatusTimeLimitExceeded},
		{"Memory Limit Exceeded", model.StatusMemoryLimitExceeded},
		{"内存超限", model.StatusMemoryLimitExceeded},
		{"Unknown", model.StatusUnknown},
		// Unrecognized text degrades to Unknown, never an error.
		{"Judging", model.StatusUnknown},
		{"", model.StatusUnknown},
	}
	for _, c := range cases {
		if got := ParseStatus(c.in); got != c.want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseStatus_WhitespaceInsensitive(t *testing.T) {
	if got := ParseStatus("  wrong   ANSWER "); got != model.StatusWrongAnswer {
		t.Fatalf("expected whitespace/case folding, got %q", got)
	}
}
