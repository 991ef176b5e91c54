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
	// Problem ids appear in hrefs like /problem/P4198 or /problem/4198.
	luoguProblemRe = regexp.MustCompile(`/problem/(P?\d+)`)
	// Record ids live in the page URL, absolute or site-relative.
	luoguRecordRe = regexp.MustCompile(`(?:https?://(?:www\.)?luogu\.com\.cn)?/record/(\d+)`)
	firstDigitsRe = regexp.MustCompile(`(\d+)`)
)

// LuoguExtractor reads luogu.com.cn record pages.
type LuoguExtractor struct {
	opts Options
}

func (x *LuoguExtractor) Extract(url, content string) (model.Submission, error) {
	if strings.TrimSpace(content) == "" {
		return model.Submission{}, ErrEmptyContent
	}
	doc, err := parseDocument(content)
	if err != nil {
		return model.Submission{}, fmt.Errorf("parse markup: %w", err)
	}

	langText, totalTime, maxMemory := x.basicInfo(doc)
	status, score := x.statusAndScore(doc)

	sub := model.Submission{
		Code:      x.code(doc),
		PID:       x.pid(doc),
		RID:       x.rid(url),
		OJ:        "luogu",
		Language:  parseLanguageOr(langText, x.opts.LangMode, model.DefaultLanguage),
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

// basicInfo walks the stat header's key/value fields. Labels are the
// site's Chinese ones: 编程语言 (language), 用时 (time), 内存 (memory).
func (x *LuoguExtractor) basicInfo(doc *goquery.Document) (lang string, totalTime, maxMemory int) {
	doc.Find(".stat.color-inverse").First().Find(".field").Each(func(_ int, field *goquery.Selection) {
		key := strings.TrimSpace(field.Find(".key").First().Text())
		value := strings.TrimSpace(field.Find(".value").First().Text())
		switch key {
		case "编程语言":
			lang = value
		case "用时":
			if ms, ok := normalize.TimeToMS(value); ok {
				totalTime = ms
			}
		case "内存":
			if kb, ok := normalize.MemToKB(value); ok {
				maxMemory = kb
			}
		}
	})
	return lang, totalTime, maxMemory
}

// code prefers a highlighted code element ("language-*" class), then any
// code element, then the first pre block.
func (x *LuoguExtractor) code(doc *goquery.Document) string {
	var code string
	doc.Find("code").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if class, ok := el.Attr("class"); ok && strings.Contains(class, "language-") {
			code = rawText(el)
			return false
		}
		return true
	})
	if code == "" {
		code = rawText(doc.Find("code").First())
	}
	if code == "" {
		code = rawText(doc.Find("pre").First())
	}
	return code
}

func (x *LuoguExtractor) pid(doc *goquery.Document) string {
	var pid string
	doc.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || !strings.Contains(href, "/problem/") {
			return true
		}
		if m := luoguProblemRe.FindStringSubmatch(href); m != nil {
			pid = m[1]
			return false
		}
		return true
	})
	return pid
}

// statusAndScore scans the info rows for the 评测状态 (verdict) and
// 评测分数 (score) lines.
func (x *LuoguExtractor) statusAndScore(doc *goquery.Document) (model.Status, int) {
	status := model.StatusUnknown
	score := 0
	doc.Find(".info-rows div").Each(func(_ int, row *goquery.Selection) {
		text := row.Text()
		if strings.Contains(text, "评测状态") {
			status = normalize.ParseStatus(lastToken(text))
		}
		if strings.Contains(text, "评测分数") {
			if m := firstDigitsRe.FindStringSubmatch(text); m != nil {
				if v, err := strconv.Atoi(m[1]); err == nil {
					score = v
				}
			}
		}
	})
	return status, score
}

func (x *LuoguExtractor) rid(url string) string {
	if m := luoguRecordRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}
