package extract

import (
	"errors"
	"fmt"

	"github.com/ojtools/ojextract/internal/model"
)

// ErrEmptyContent is returned when the input markup is blank. The caller
// should re-fetch the page; no partial payload is possible.
var ErrEmptyContent = errors.New("empty content")

// NoExtractorError means every registered extractor ranked the URL at zero.
// Retrying with the same URL cannot succeed.
type NoExtractorError struct {
	URL string
}

func (e *NoExtractorError) Error() string {
	return fmt.Sprintf("no extractor found for url: %s", e.URL)
}

// MissingFieldError reports the first required field (pid, rid, code, in
// that order) that could not be located. Partial carries everything that
// was recovered, for diagnostics.
type MissingFieldError struct {
	Field   string
	Partial model.Submission
}

func (e *MissingFieldError) Error() string {
	return "missing field: " + e.Field
}

// validateSubmission runs the required-field checks in their fixed order.
// The order is part of the observable contract: when several fields are
// absent at once, the first one in this list is the one reported.
func validateSubmission(sub model.Submission) error {
	required := []struct {
		name  string
		value string
	}{
		{"pid", sub.PID},
		{"rid", sub.RID},
		{"code", sub.Code},
	}
	for _, f := range required {
		if f.value == "" {
			return &MissingFieldError{Field: f.name, Partial: sub}
		}
	}
	return nil
}
