package model

// Submission is the normalized record produced by one extraction call.
// A success must carry non-empty PID, RID and Code; a Submission attached
// to a failure as the partial payload may violate that.
type Submission struct {
	Code      string   `json:"code"`
	PID       string   `json:"pid"`
	RID       string   `json:"rid"`
	OJ        string   `json:"oj"`
	Language  Language `json:"language"`
	Status    Status   `json:"status"`
	TotalTime int      `json:"total_time"` // milliseconds
	MaxMemory int      `json:"max_memory"` // kibibytes
	Score     int      `json:"score"`
}

// Language is the closed set of submission languages. The string values are
// the wire form expected by the grading service.
type Language string

const (
	LangCpp14         Language = "cpp14"
	LangCpp17         Language = "cpp17"
	LangCpp11         Language = "cpp11"
	LangCpp           Language = "cpp"
	LangCppNoiLinux   Language = "cpp-noilinux"
	LangCpp11NoiLinux Language = "cpp11-noilinux"
	LangCpp11Clang    Language = "cpp11-clang"
	LangCpp17Clang    Language = "cpp17-clang"
	LangC             Language = "c"
	LangCNoiLinux     Language = "c-noilinux"
)

// DefaultLanguage is used when a page reports no language at all and the
// lenient parsing mode is active.
const DefaultLanguage = LangCpp17

// Status is the closed set of judge verdicts. Multi-word verdicts serialize
// with spaces, matching the grading service schema.
type Status string

const (
	StatusUnknown             Status = "Unknown"
	StatusAccepted            Status = "Accepted"
	StatusWrongAnswer         Status = "Wrong Answer"
	StatusPartiallyCorrect    Status = "Partially Correct"
	StatusRuntimeError        Status = "Runtime Error"
	StatusCompileError        Status = "Compile Error"
	StatusTimeLimitExceeded   Status = "Time Limit Exceeded"
	StatusMemoryLimitExceeded Status = "Memory Limit Exceeded"
)
