package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/ojtools/ojextract/internal/model"
	"github.com/ojtools/ojextract/internal/normalize"
)

var (
	vjSolutionRe = regexp.MustCompile(`https://vjudge\.net/solution/(\d+)`)
	vjProblemRe  = regexp.MustCompile(`/problem/([^/]+)`)
	// Remote judges identify runs by a 24-hex Mongo-style id.
	vjRemoteRunRe = regexp.MustCompile(`[a-f0-9]{24}`)
)

// VjudgeExtractor reads vjudge.net solution pages. VJudge proxies other
// judges, so the record carries the remote site's name in its oj column
// and a composite problem id like "UESTC-126"; MapVirtualJudgeOrigin can
// split those back apart.
type VjudgeExtractor struct {
	opts Options
}

func (x *VjudgeExtractor) Extract(url, content string) (model.Submission, error) {
	if strings.TrimSpace(content) == "" {
		return model.Submission{}, ErrEmptyContent
	}
	doc, err := parseDocument(content)
	if err != nil {
		return model.Submission{}, fmt.Errorf("parse markup: %w", err)
	}

	status := x.status(doc)
	totalTime, maxMemory := x.timeAndMemory(doc)

	if remote := x.remoteRunID(doc); remote != "" {
		log.Debug().Str("remote_run_id", remote).Msg("remote judge run")
	}

	sub := model.Submission{
		Code:      x.code(doc),
		PID:       x.pid(doc),
		RID:       x.rid(url, doc),
		OJ:        x.oj(doc),
		Language:  x.language(doc),
		Status:    status,
		TotalTime: totalTime,
		MaxMemory: maxMemory,
		Score:     scoreFromStatus(status),
	}
	if err := validateSubmission(sub); err != nil {
		return model.Submission{}, err
	}
	return sub, nil
}

func (x *VjudgeExtractor) code(doc *goquery.Document) string {
	if code := rawText(doc.Find("pre code").First()); code != "" {
		return code
	}
	return rawText(doc.Find("pre").First())
}

// pid comes from the problem link in the solution modal's title.
func (x *VjudgeExtractor) pid(doc *goquery.Document) string {
	var pid string
	doc.Find(".modal-title a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || !strings.Contains(href, "/problem/") {
			return true
		}
		if m := vjProblemRe.FindStringSubmatch(href); m != nil {
			pid = m[1]
			return false
		}
		return true
	})
	return pid
}

// rid tries the page URL first, then the modal title's solution link, then
// a table row whose id attribute is purely numeric.
func (x *VjudgeExtractor) rid(url string, doc *goquery.Document) string {
	if m := vjSolutionRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}

	var rid string
	doc.Find(`.modal-title a[href^='/solution/']`).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok {
			return true
		}
		if m := vjSolutionRe.FindStringSubmatch(href); m != nil {
			rid = m[1]
			return false
		}
		if rest, found := strings.CutPrefix(href, "/solution/"); found && rest != "" {
			rid = rest
			return false
		}
		return true
	})
	if rid != "" {
		return rid
	}

	doc.Find("tr[id]").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		if id, ok := tr.Attr("id"); ok && allDigits(id) {
			rid = id
			return false
		}
		return true
	})
	return rid
}

func (x *VjudgeExtractor) remoteRunID(doc *goquery.Document) string {
	text := doc.Find(".remote-run-id a").First().Text()
	return vjRemoteRunRe.FindString(text)
}

// language reads the info panel's 语言 row, falling back to the language
// column's tooltip attribute.
func (x *VjudgeExtractor) language(doc *goquery.Document) model.Language {
	if text := x.infoPanelValue(doc, "语言"); text != "" {
		return parseLanguageOr(text, x.opts.LangMode, model.DefaultLanguage)
	}
	if tooltip, ok := doc.Find(".language div[data-original-title]").First().Attr("data-original-title"); ok {
		return parseLanguageOr(tooltip, x.opts.LangMode, model.DefaultLanguage)
	}
	return model.DefaultLanguage
}

// status prefers the inline solution view, then the info panel's 评测结果
// row.
func (x *VjudgeExtractor) status(doc *goquery.Document) model.Status {
	if sel := doc.Find(".status .view-solution").First(); sel.Length() > 0 {
		return normalize.ParseStatus(strings.TrimSpace(sel.Text()))
	}
	if text := x.infoPanelValue(doc, "评测结果"); text != "" {
		return normalize.ParseStatus(text)
	}
	return model.StatusUnknown
}

// timeAndMemory reads the result table's runtime/memory cells, filling any
// gaps from the info panel's 耗时 and 内存消耗 rows.
func (x *VjudgeExtractor) timeAndMemory(doc *goquery.Document) (totalTime, maxMemory int) {
	if text := strings.TrimSpace(doc.Find(".runtime").First().Text()); text != "" {
		if ms, ok := normalize.TimeToMS(text); ok {
			totalTime = ms
		}
	}
	if text := strings.TrimSpace(doc.Find(".memory").First().Text()); text != "" {
		if kb, ok := normalize.MemToKB(text); ok {
			maxMemory = kb
		}
	}

	// Once either figure is missing the whole result row is suspect, so
	// the info panel overwrites both values, not just the missing one.
	if totalTime == 0 || maxMemory == 0 {
		if text := x.infoPanelValue(doc, "耗时"); text != "" {
			if ms, ok := normalize.TimeToMS(text); ok {
				totalTime = ms
			}
		}
		if text := x.infoPanelValue(doc, "内存消耗"); text != "" {
			if kb, ok := normalize.MemToKB(text); ok {
				maxMemory = kb
			}
		}
	}
	return totalTime, maxMemory
}

// oj reads the remote judge's name from the record row; the record stays
// tagged "vj" when the column is absent.
func (x *VjudgeExtractor) oj(doc *goquery.Document) string {
	if text := strings.TrimSpace(doc.Find(".oj").First().Text()); text != "" {
		return text
	}
	return "vj"
}

// infoPanelValue finds the info-panel row whose header contains label and
// returns its value cell's text.
func (x *VjudgeExtractor) infoPanelValue(doc *goquery.Document, label string) string {
	var value string
	doc.Find("#info-panel table tbody tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		header := strings.ToLower(row.Find("th").First().Text())
		if !strings.Contains(header, label) {
			return true
		}
		value = strings.TrimSpace(row.Find("td").First().Text())
		return false
	})
	return value
}

// scoreFromStatus derives the score when the page has no explicit score
// field: full marks for Accepted, half for Partially Correct, else zero.
func scoreFromStatus(status model.Status) int {
	switch status {
	case model.StatusAccepted:
		return 100
	case model.StatusPartiallyCorrect:
		return 50
	default:
		return 0
	}
}
