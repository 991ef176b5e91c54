package extract

import (
	"strings"

	"github.com/ojtools/ojextract/internal/model"
)

// Origin identifies the real judge behind a proxied VJudge submission.
type Origin struct {
	OJ  string
	PID string
	RID string
}

// MapVirtualJudgeOrigin splits a VJudge record's composite problem id
// (e.g. "UESTC-126") into the originating judge and its own problem id,
// so the grading service can attribute the run to the real site. ok is
// false when the record does not look like a VJudge proxy or the id has
// no recognizable judge prefix.
func MapVirtualJudgeOrigin(sub model.Submission) (Origin, bool) {
	oj := strings.ToLower(sub.OJ)
	if oj != "vj" && !strings.Contains(oj, "vjudge") && !strings.Contains(oj, "virtual") {
		// Records whose oj column named the remote judge directly are
		// already attributed; only still-proxied records get split.
		return Origin{}, false
	}

	pid := strings.TrimSpace(sub.PID)
	if idx := strings.Index(pid, "-"); idx > 0 {
		return Origin{
			OJ:  pid[:idx],
			PID: pid[idx+1:],
			RID: sub.RID,
		}, true
	}

	// Some remote ids separate the judge with a slash, underscore or colon.
	if parts := strings.FieldsFunc(pid, func(r rune) bool {
		return r == '/' || r == '_' || r == ':'
	}); len(parts) >= 2 {
		return Origin{OJ: parts[0], PID: parts[1], RID: sub.RID}, true
	}

	return Origin{}, false
}
