package app

// Config holds runtime configuration for the extraction pipeline.
type Config struct {
	// URL of the submission page the markup was rendered from. Drives
	// extractor selection and URL-based field fallbacks.
	URL string

	// InputPath is the file holding the rendered markup; "-" reads stdin.
	InputPath string
	// OutputPath receives the JSON result envelope; "-" writes stdout.
	OutputPath string

	// StrictLanguage rejects unrecognized language text instead of
	// defaulting to C++17. The affected field still degrades to the
	// default; strictness only changes what counts as recognized.
	StrictLanguage bool

	// MapVirtualJudge splits proxied VJudge records into their origin
	// judge and problem id after a successful extraction.
	MapVirtualJudge bool

	Verbose bool
}
