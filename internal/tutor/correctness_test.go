package tutor

import (
	"testing"

	"github.com/abhisek/mathtutor/internal/catalog"
)

func TestAnswerMatches(t *testing.T) {
	p := catalog.Problem{
		Number:    1,
		Statement: "What is 2 + 2?",
		Solutions: []catalog.Solution{
			{Method: "addition", Text: "2 + 2 = 4"},
			{Method: "counting", Text: "count up two from 2 to reach 4"},
		},
	}

	cases := []struct {
		name   string
		answer string
		want   bool
	}{
		{"exact substring", "4", true},
		{"full expression", "2 + 2 = 4", true},
		{"whitespace trimmed", "  4  ", true},
		{"matches second solution", "count up", true},
		{"wrong answer", "5", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"near miss with spaces", "2+2=4", false},
	}
	for _, tc := range cases {
		if got := AnswerMatches(tc.answer, p); got != tc.want {
			t.Errorf("%s: AnswerMatches(%q) = %v, want %v", tc.name, tc.answer, got, tc.want)
		}
	}
}

func TestAnswerMatches_NoSolutions(t *testing.T) {
	p := catalog.Problem{Number: 1, Statement: "open question"}
	if AnswerMatches("anything", p) {
		t.Fatal("problem without solutions should never match")
	}
}
