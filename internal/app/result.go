package app

import (
	"errors"

	"github.com/ojtools/ojextract/internal/extract"
	"github.com/ojtools/ojextract/internal/model"
)

// Result is the JSON envelope handed to the browser-side caller. On
// success Partial holds the complete Submission; on failure it holds
// whatever fields were recovered before the failing check, when the error
// kind allows a partial payload at all.
type Result struct {
	Success       bool              `json:"success"`
	Error         string            `json:"error,omitempty"`
	Partial       *model.Submission `json:"partial,omitempty"`
	ExtractorName string            `json:"extractor_name,omitempty"`
}

// BuildResult folds an extraction outcome into the wire envelope.
func BuildResult(name string, sub model.Submission, err error) Result {
	if err == nil {
		return Result{Success: true, Partial: &sub, ExtractorName: name}
	}

	res := Result{Success: false, Error: err.Error(), ExtractorName: name}

	var missing *extract.MissingFieldError
	if errors.As(err, &missing) {
		partial := missing.Partial
		res.Partial = &partial
	}

	var noExt *extract.NoExtractorError
	if errors.As(err, &noExt) {
		// No extractor matched, so there is no name to report.
		res.ExtractorName = ""
	}
	return res
}
