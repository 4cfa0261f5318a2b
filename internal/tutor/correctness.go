package tutor

import (
	"strings"

	"github.com/abhisek/mathtutor/internal/catalog"
)

// AnswerMatches reports whether the trimmed answer appears inside at
// least one of the problem's solution texts. This substring heuristic is
// the system's ground truth for attempt statistics, deliberately
// independent of the LLM's prose judgement. It is crude about formatting
// and equivalent forms; callers must reject empty answers upstream.
func AnswerMatches(answer string, p catalog.Problem) bool {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return false
	}
	for _, sol := range p.Solutions {
		if strings.Contains(sol.Text, trimmed) {
			return true
		}
	}
	return false
}
