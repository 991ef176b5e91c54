package extract

import (
	"github.com/rs/zerolog/log"
)

// Factory selects the best-matching extractor for a URL from its fixed
// registry. Build it once at application start and share it freely: after
// construction it is read-only, so concurrent Create calls need no lock.
type Factory struct {
	entries []RegistryEntry
	opts    Options
}

// NewFactory builds a factory over the default site registry.
func NewFactory(opts Options) *Factory {
	return &Factory{entries: defaultEntries(), opts: opts}
}

// Create ranks every registered extractor against url and constructs the
// highest-scoring one, returning it together with its display name. Ties
// go to the earlier registration. A top score of zero is never a match:
// it yields a NoExtractorError.
func (f *Factory) Create(url string) (Extractor, string, error) {
	bestScore := 0
	bestIdx := -1
	for i := range f.entries {
		// Strictly greater, so the first registered entry wins ties.
		if score := f.entries[i].Rank(url); score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return nil, "", &NoExtractorError{URL: url}
	}
	entry := &f.entries[bestIdx]
	log.Debug().
		Str("url", url).
		Str("extractor", entry.Name).
		Int("score", bestScore).
		Msg("selected extractor")
	return entry.New(f.opts), entry.Name, nil
}
