// Package app wires configuration and the extraction pipeline together
// behind a small facade. The browser-side agent (or the CLI standing in
// for it) hands over a URL plus rendered markup and gets back either a
// normalized Submission or a structured error.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/ojtools/ojextract/internal/extract"
	"github.com/ojtools/ojextract/internal/model"
	"github.com/ojtools/ojextract/internal/normalize"
)

// Pipeline is the single entry point callers hold. Construct it once at
// startup and share it; the factory inside is read-only after New, so
// concurrent Extract calls are safe without locking.
type Pipeline struct {
	cfg     Config
	factory *extract.Factory
}

// New builds a Pipeline from cfg.
func New(cfg Config) *Pipeline {
	mode := normalize.LangModeLenient
	if cfg.StrictLanguage {
		mode = normalize.LangModeStrict
	}
	return &Pipeline{
		cfg:     cfg,
		factory: extract.NewFactory(extract.Options{LangMode: mode}),
	}
}

// CreateExtractor selects the extractor for url and reports its display
// name, without extracting. Useful when the caller only needs to know
// which site matched.
func (p *Pipeline) CreateExtractor(url string) (extract.Extractor, string, error) {
	return p.factory.Create(url)
}

// Extract runs the full pipeline for one page: pick an extractor by URL,
// parse the markup, assemble and validate the Submission. The returned
// error is either a *extract.NoExtractorError, extract.ErrEmptyContent,
// or a *extract.MissingFieldError carrying the partial record.
func (p *Pipeline) Extract(url, content string) (model.Submission, error) {
	ext, name, err := p.factory.Create(url)
	if err != nil {
		return model.Submission{}, err
	}

	sub, err := ext.Extract(url, content)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Str("extractor", name).Msg("extraction failed")
		return model.Submission{}, err
	}

	if p.cfg.MapVirtualJudge {
		if origin, ok := extract.MapVirtualJudgeOrigin(sub); ok {
			log.Debug().Str("oj", origin.OJ).Str("pid", origin.PID).Msg("mapped virtual judge origin")
			sub.OJ = origin.OJ
			sub.PID = origin.PID
			if origin.RID != "" {
				sub.RID = origin.RID
			}
		}
	}
	return sub, nil
}
