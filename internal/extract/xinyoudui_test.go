package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/ojtools/ojextract/internal/model"
)

const xydContestURL = "https://www.xinyoudui.com/ac/contest/74700B6AA0008E906FED34/problem/15569"

const xydSubmissionPage = `
<div id="rc-tabs-0-panel-submissions">
  <div class="_overview_10upj_43">
    <div class="_top_10upj_56">
      <div class="_left_10upj_61">
        <div class="_tags_10upj_68 print-hide">
          <span class="ac-ant-tag css-oxq8ps">题目ID：23051</span>
          <span class="ac-ant-tag ac-ant-tag-blue css-oxq8ps">必做题</span>
        </div>
      </div>
    </div>
  </div>
  <table>
    <tbody>
      <tr class="ac-ant-table-row ac-ant-table-row-selected">
        <td>2542938</td>
        <td>C++17</td>
        <td>Accepted</td>
        <td><strong>100 分</strong></td>
      </tr>
    </tbody>
  </table>
  <div class="_codingArea_hyhtw_77">
    <div class="cm-theme-light _codeMirror_hyhtw_81 x-star-design-codeMirror">
      <div class="cm-content">
        <div class="cm-line">#include &lt;bits/stdc++.h&gt;</div>
        <div class="cm-line">using namespace std;</div>
        <div class="cm-line">int main() {</div>
        <div class="cm-line">    return 0;</div>
        <div class="cm-line">}</div>
      </div>
    </div>
  </div>
  <div class="_compilation_1f8cm_53">
    time: 350ms, memory: 141628kb, score: 100, status: Accepted
  </div>
</div>`

func TestXinyoudui_ExtractSubmission(t *testing.T) {
	ext := &XinyouduiExtractor{}
	sub, err := ext.Extract(xydContestURL, xydSubmissionPage)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if sub.PID != "23051" {
		t.Fatalf("pid = %q, want 23051", sub.PID)
	}
	if sub.RID != "2542938" {
		t.Fatalf("rid = %q, want 2542938", sub.RID)
	}
	if sub.OJ != "xyd" {
		t.Fatalf("oj = %q, want xyd", sub.OJ)
	}
	if sub.Language != model.LangCpp17 {
		t.Fatalf("language = %q, want cpp17", sub.Language)
	}
	if sub.Status != model.StatusAccepted {
		t.Fatalf("status = %q, want Accepted", sub.Status)
	}
	if sub.Score != 100 {
		t.Fatalf("score = %d, want 100", sub.Score)
	}
	if sub.TotalTime != 350 {
		t.Fatalf("total_time = %d, want 350", sub.TotalTime)
	}
	if sub.MaxMemory != 141628 {
		t.Fatalf("max_memory = %d, want 141628", sub.MaxMemory)
	}

	// Code is rebuilt line by line with a trailing newline.
	want := "#include <bits/stdc++.h>\nusing namespace std;\nint main() {\n    return 0;\n}\n"
	if sub.Code != want {
		t.Fatalf("code mismatch:\n got %q\nwant %q", sub.Code, want)
	}
	if !strings.HasSuffix(sub.Code, "}\n") {
		t.Fatalf("code should end with a newline: %q", sub.Code)
	}
}

func TestXinyoudui_PIDFallsBackToURL(t *testing.T) {
	// Drop the labeled tag; the contest URL still names the problem.
	page := strings.ReplaceAll(xydSubmissionPage,
		`<span class="ac-ant-tag css-oxq8ps">题目ID：23051</span>`, "")

	ext := &XinyouduiExtractor{}
	sub, err := ext.Extract(xydContestURL, page)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if sub.PID != "15569" {
		t.Fatalf("pid = %q, want 15569 from the URL", sub.PID)
	}
}

func TestXinyoudui_LabeledTagBeatsURL(t *testing.T) {
	// Both sources present: the page tag wins.
	ext := &XinyouduiExtractor{}
	sub, err := ext.Extract(xydContestURL, xydSubmissionPage)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if sub.PID != "23051" {
		t.Fatalf("pid = %q, the labeled tag must take priority", sub.PID)
	}
}

func TestXinyoudui_NoSelectedRowFails(t *testing.T) {
	// Without the selected row there is no rid to recover.
	page := strings.ReplaceAll(xydSubmissionPage,
		"ac-ant-table-row-selected", "ac-ant-table-row-other")

	ext := &XinyouduiExtractor{}
	_, err := ext.Extract(xydContestURL, page)
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "rid" {
		t.Fatalf("missing field = %q, want rid", missing.Field)
	}
	if missing.Partial.PID != "23051" {
		t.Fatalf("partial should keep the pid, got %q", missing.Partial.PID)
	}
	if missing.Partial.Code == "" {
		t.Fatal("partial should keep the code")
	}
}

func TestXinyoudui_EmptyContent(t *testing.T) {
	ext := &XinyouduiExtractor{}
	if _, err := ext.Extract(xydContestURL, "\n"); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}
