package extract

import "strings"

// RegistryEntry declares one extractor: a display name, the URL tags it
// claims, and a constructor. Entries are assembled once at factory
// construction and never change afterward.
type RegistryEntry struct {
	// Name is the extractor's display name, reported to callers so they
	// can tell which site matched.
	Name string
	// Tags are substrings that mark a URL as belonging to this site.
	Tags []string
	// New builds a fresh extractor instance.
	New func(Options) Extractor
}

// Rank scores how confidently this entry claims url: 10 per tag found in
// the URL (case-insensitive) plus 20 for the display name itself. Zero
// means no claim at all. Several entries may score above zero for an
// ambiguous URL; the factory takes the highest.
func (e *RegistryEntry) Rank(url string) int {
	lower := strings.ToLower(url)
	score := 0
	for _, tag := range e.Tags {
		if strings.Contains(lower, strings.ToLower(tag)) {
			score += 10
		}
	}
	if strings.Contains(lower, strings.ToLower(e.Name)) {
		score += 20
	}
	return score
}

// defaultEntries lists every supported site in registration order. Order
// matters: the factory breaks rank ties in favor of the earlier entry.
func defaultEntries() []RegistryEntry {
	return []RegistryEntry{
		{
			Name: "洛谷",
			Tags: []string{"luogu", "Luogu"},
			New:  func(o Options) Extractor { return &LuoguExtractor{opts: o} },
		},
		{
			Name: "vj",
			Tags: []string{"vjudge", "Virtual Judge"},
			New:  func(o Options) Extractor { return &VjudgeExtractor{opts: o} },
		},
		{
			Name: "xyd",
			Tags: []string{"xinyoudui", "信友队"},
			New:  func(o Options) Extractor { return &XinyouduiExtractor{opts: o} },
		},
	}
}
