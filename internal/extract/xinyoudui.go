package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ojtools/ojextract/internal/model"
	"github.com/ojtools/ojextract/internal/normalize"
)

var (
	// The problem id is printed in a tag element, full-width colon and all.
	xydProblemTagRe = regexp.MustCompile(`题目ID：\s*(\d+)`)
	// Contest URLs carry the problem id as the last path segment.
	xydContestRe = regexp.MustCompile(`https://(?:www\.)?xinyoudui\.com/ac/contest/.*?/problem/(\d+)`)
	// The compilation summary packs both figures into one line.
	xydTimeMemRe = regexp.MustCompile(`time: (\d+)ms, memory: (\d+)kb`)
	xydScoreRe   = regexp.MustCompile(`(\d+)\s*分`)
)

// XinyouduiExtractor reads xinyoudui.com contest submission tabs. The page
// is a CodeMirror-backed React app: code lives in per-line editor
// elements, and the submission under view is the selected table row.
type XinyouduiExtractor struct {
	opts Options
}

func (x *XinyouduiExtractor) Extract(url, content string) (model.Submission, error) {
	if strings.TrimSpace(content) == "" {
		return model.Submission{}, ErrEmptyContent
	}
	doc, err := parseDocument(content)
	if err != nil {
		return model.Submission{}, fmt.Errorf("parse markup: %w", err)
	}

	status, score := x.statusAndScore(doc)
	totalTime, maxMemory := x.timeAndMemory(doc)

	sub := model.Submission{
		Code:      x.code(doc),
		PID:       x.pid(url, doc),
		RID:       x.rid(doc),
		OJ:        "xyd",
		Language:  x.language(doc),
		Status:    status,
		TotalTime: totalTime,
		MaxMemory: maxMemory,
		Score:     score,
	}
	if err := validateSubmission(sub); err != nil {
		return model.Submission{}, err
	}
	return sub, nil
}

// code rebuilds the source line by line from the editor's .cm-line
// elements, joined with newlines and a trailing newline.
func (x *XinyouduiExtractor) code(doc *goquery.Document) string {
	var lines []string
	doc.Find(".cm-line").Each(func(_ int, line *goquery.Selection) {
		lines = append(lines, strings.TrimRight(line.Text(), " \t\r\n"))
	})
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// pid prefers the labeled 题目ID tag on the page over the URL pattern.
func (x *XinyouduiExtractor) pid(url string, doc *goquery.Document) string {
	var pid string
	doc.Find(".ac-ant-tag").EachWithBreak(func(_ int, tag *goquery.Selection) bool {
		if m := xydProblemTagRe.FindStringSubmatch(tag.Text()); m != nil {
			pid = m[1]
			return false
		}
		return true
	})
	if pid != "" {
		return pid
	}
	if m := xydContestRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

// selectedCells returns the cells of the highlighted submission row.
func (x *XinyouduiExtractor) selectedCells(doc *goquery.Document) *goquery.Selection {
	return doc.Find("tr.ac-ant-table-row-selected").First().Find("td")
}

func (x *XinyouduiExtractor) rid(doc *goquery.Document) string {
	return strings.TrimSpace(x.selectedCells(doc).First().Text())
}

func (x *XinyouduiExtractor) language(doc *goquery.Document) model.Language {
	cells := x.selectedCells(doc)
	if cells.Length() < 2 {
		return model.DefaultLanguage
	}
	text := strings.TrimSpace(cells.Eq(1).Text())
	return parseLanguageOr(text, x.opts.LangMode, model.DefaultLanguage)
}

// statusAndScore reads the third and fourth cells of the selected row; the
// score cell is text like "100 分".
func (x *XinyouduiExtractor) statusAndScore(doc *goquery.Document) (model.Status, int) {
	cells := x.selectedCells(doc)
	status := model.StatusUnknown
	score := 0
	if cells.Length() >= 3 {
		status = normalize.ParseStatus(strings.TrimSpace(cells.Eq(2).Text()))
	}
	if cells.Length() >= 4 {
		if m := xydScoreRe.FindStringSubmatch(cells.Eq(3).Text()); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				score = v
			}
		}
	}
	return status, score
}

// timeAndMemory parses the compilation summary block. Its class name is a
// hashed CSS-module token, so match on the stable "_compilation_" stem.
func (x *XinyouduiExtractor) timeAndMemory(doc *goquery.Document) (totalTime, maxMemory int) {
	text := doc.Find(`div[class*='_compilation_']`).First().Text()
	if m := xydTimeMemRe.FindStringSubmatch(text); m != nil {
		totalTime, _ = strconv.Atoi(m[1])
		maxMemory, _ = strconv.Atoi(m[2])
	}
	return totalTime, maxMemory
}
