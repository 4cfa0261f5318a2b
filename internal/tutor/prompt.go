package tutor

import (
	"fmt"
	"strings"
)

const feedbackSystemPrompt = `You are a helpful and encouraging math tutor. Your goal is to:
1. Evaluate if the student's answer is correct
2. Provide encouraging feedback
3. If the answer is wrong, give a helpful hint without giving away the answer
4. When the history shows repeated struggles, gently reference them
5. Keep responses concise and focused`

func buildFeedbackUserMessage(pctx Context) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Problem: %s\n", pctx.Problem.Statement))

	b.WriteString("\nAvailable hints:\n")
	if len(pctx.Problem.Hints) == 0 {
		b.WriteString("None\n")
	} else {
		for i, h := range pctx.Problem.Hints {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, h))
		}
	}

	b.WriteString("\nCorrect solutions:\n")
	for _, sol := range pctx.Problem.Solutions {
		b.WriteString(fmt.Sprintf("- [%s] %s\n", sol.Method, sol.Text))
	}

	b.WriteString(fmt.Sprintf("\nStudent's answer: %s\n", pctx.Answer))

	b.WriteString("\nStudent history:\n")
	b.WriteString(fmt.Sprintf("- Distinct problems attempted: %d\n", pctx.ProblemsAttempted))
	if len(pctx.WeakProblems) > 0 {
		nums := make([]string, len(pctx.WeakProblems))
		for i, n := range pctx.WeakProblems {
			nums[i] = fmt.Sprintf("%d", n)
		}
		b.WriteString(fmt.Sprintf("- Problems needing practice: %s\n", strings.Join(nums, ", ")))
	}

	if len(pctx.RecentChat) > 0 {
		b.WriteString("\nRecent conversation (newest first):\n")
		for _, m := range pctx.RecentChat {
			b.WriteString(fmt.Sprintf("[problem %d, %s] %s\n", m.ProblemNumber, m.Role, m.Content))
		}
	}

	b.WriteString("\nEvaluate the answer and provide helpful feedback.")

	return b.String()
}
