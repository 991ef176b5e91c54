// Package extract locates submission records inside the rendered markup of
// supported judge sites and normalizes them into model.Submission values.
// Each site gets its own extractor; a ranking factory picks the right one
// for a URL. Extractors are stateless and cheap, so the factory builds a
// fresh instance per call.
package extract

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ojtools/ojextract/internal/model"
	"github.com/ojtools/ojextract/internal/normalize"
)

// Extractor parses one judge site's rendered submission page.
// Implementations must be deterministic: identical (url, content) input
// yields an identical Submission.
type Extractor interface {
	// Extract assembles a best-effort Submission from url and content.
	// Individual field failures degrade to defaults; only blank content
	// (ErrEmptyContent) or a missing required field (MissingFieldError)
	// fail the call.
	Extract(url, content string) (model.Submission, error)
}

// Options carries the per-pipeline knobs shared by every extractor.
type Options struct {
	// LangMode selects strict or lenient language classification. Either
	// way a language failure only affects that one field; the page's
	// language cell is not a required field.
	LangMode normalize.LangMode
}

// parseLanguageOr classifies the page's language text, degrading to
// fallback when the text is blank or, in strict mode, unrecognized.
// Language is optional, so a strict-mode failure is logged and swallowed
// here rather than aborting the extraction.
func parseLanguageOr(text string, mode normalize.LangMode, fallback model.Language) model.Language {
	if strings.TrimSpace(text) == "" {
		return fallback
	}
	lang, err := normalize.ParseLanguage(text, mode)
	if err != nil {
		log.Debug().Err(err).Str("text", text).Msg("language not recognized")
		return fallback
	}
	return lang
}
