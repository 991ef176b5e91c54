package extract

import (
	"errors"
	"testing"

	"github.com/ojtools/ojextract/internal/model"
)

func TestFactory_CreateBySite(t *testing.T) {
	f := NewFactory(Options{})
	cases := []struct {
		url  string
		name string
	}{
		{"https://www.luogu.com.cn/record/241494617", "洛谷"},
		{"https://vjudge.net/solution/65377961", "vj"},
		{"https://www.xinyoudui.com/ac/contest/74700B6AA0008E906FED34/problem/15569", "xyd"},
	}
	for _, c := range cases {
		ext, name, err := f.Create(c.url)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", c.url, err)
		}
		if name != c.name {
			t.Fatalf("Create(%q) matched %q, want %q", c.url, name, c.name)
		}
		if ext == nil {
			t.Fatalf("Create(%q) returned nil extractor", c.url)
		}
	}
}

func TestFactory_NoExtractor(t *testing.T) {
	f := NewFactory(Options{})
	url := "https://example.com/some/page"
	_, _, err := f.Create(url)
	var noExt *NoExtractorError
	if !errors.As(err, &noExt) {
		t.Fatalf("expected NoExtractorError, got %v", err)
	}
	if noExt.URL != url {
		t.Fatalf("error should carry the url, got %q", noExt.URL)
	}
}

func TestRegistryEntry_RankScoring(t *testing.T) {
	e := RegistryEntry{Name: "example", Tags: []string{"alpha", "beta"}}

	if got := e.Rank("https://other.net/x"); got != 0 {
		t.Fatalf("no match should rank 0, got %d", got)
	}
	// Each tag adds 10.
	if got := e.Rank("https://alpha.net/x"); got != 10 {
		t.Fatalf("one tag should rank 10, got %d", got)
	}
	if got := e.Rank("https://alpha.net/beta"); got != 20 {
		t.Fatalf("two tags should rank 20, got %d", got)
	}
	// The display name adds 20, and matching is case-insensitive.
	if got := e.Rank("https://ALPHA.EXAMPLE.com/Beta"); got != 40 {
		t.Fatalf("tags plus name should rank 40, got %d", got)
	}
}

func TestFactory_ZeroScoreIsNeverAMatch(t *testing.T) {
	f := &Factory{entries: []RegistryEntry{
		{Name: "nevermatch", Tags: nil, New: func(Options) Extractor { return &LuoguExtractor{} }},
	}}
	if _, _, err := f.Create("https://example.com/"); err == nil {
		t.Fatal("a top score of zero must not be treated as a match")
	}
}

func TestFactory_TieBreaksToFirstRegistered(t *testing.T) {
	mk := func(name string) RegistryEntry {
		return RegistryEntry{
			Name: name,
			Tags: []string{"shared"},
			New:  func(Options) Extractor { return &LuoguExtractor{} },
		}
	}
	f := &Factory{entries: []RegistryEntry{mk("first"), mk("second")}}
	// Both entries score 10 via the shared tag; registration order decides.
	_, name, err := f.Create("https://shared.example.com/")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if name != "first" {
		t.Fatalf("tie should go to the first registered entry, got %q", name)
	}
}

func TestFactory_HigherScoreWinsOverOrder(t *testing.T) {
	f := &Factory{entries: []RegistryEntry{
		{Name: "weak", Tags: []string{"shared"}, New: func(Options) Extractor { return &LuoguExtractor{} }},
		{Name: "strong", Tags: []string{"shared", "extra"}, New: func(Options) Extractor { return &VjudgeExtractor{} }},
	}}
	_, name, err := f.Create("https://shared.example.com/extra")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if name != "strong" {
		t.Fatalf("highest score should win regardless of order, got %q", name)
	}
}

func TestValidateSubmission_ReportsFirstMissingField(t *testing.T) {
	// pid, rid and code are all absent; pid must be the one reported.
	err := validateSubmission(model.Submission{OJ: "luogu"})
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "pid" {
		t.Fatalf("expected pid to be reported first, got %q", missing.Field)
	}

	err = validateSubmission(model.Submission{PID: "P1", Code: "x"})
	if !errors.As(err, &missing) || missing.Field != "rid" {
		t.Fatalf("expected rid to be reported, got %v", err)
	}

	err = validateSubmission(model.Submission{PID: "P1", RID: "2"})
	if !errors.As(err, &missing) || missing.Field != "code" {
		t.Fatalf("expected code to be reported, got %v", err)
	}

	if err := validateSubmission(model.Submission{PID: "P1", RID: "2", Code: "x"}); err != nil {
		t.Fatalf("complete submission should validate, got %v", err)
	}
}
