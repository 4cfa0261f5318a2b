package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSource = `{
  "problems": [
    {
      "problem_number": 2,
      "problem": "What is 7 x 8?",
      "hints": {"1": "Think of 7 x 4 doubled."},
      "solutions": [
        {"method": "multiplication", "solution": "7 x 8 = 56"}
      ]
    },
    {
      "problem_number": 1,
      "problem": "What is 2 + 2?",
      "hints": {"1": "add", "2": "carry the one"},
      "solutions": [
        {"method": "addition", "solution": "2 + 2 = 4"},
        {"method": "counting", "solution": "count up two from 2 to get 4"}
      ]
    }
  ]
}`

func TestParse_Valid(t *testing.T) {
	cat, err := Parse([]byte(validSource))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 problems, got %d", cat.Len())
	}
	if cat.Max() != 2 {
		t.Fatalf("expected max 2, got %d", cat.Max())
	}

	// Problems come back ordered by number regardless of source order.
	ps := cat.Problems()
	if ps[0].Number != 1 || ps[1].Number != 2 {
		t.Fatalf("expected order [1 2], got [%d %d]", ps[0].Number, ps[1].Number)
	}

	p, ok := cat.Lookup(1)
	if !ok {
		t.Fatal("expected problem 1 to exist")
	}
	if p.Statement != "What is 2 + 2?" {
		t.Fatalf("unexpected statement: %q", p.Statement)
	}
	if p.HintCount() != 2 {
		t.Fatalf("expected 2 hints, got %d", p.HintCount())
	}
	if len(p.Solutions) != 2 || p.Solutions[0].Method != "addition" {
		t.Fatalf("unexpected solutions: %+v", p.Solutions)
	}
}

func TestParse_HintOrdering(t *testing.T) {
	cat, err := Parse([]byte(validSource))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := cat.Lookup(1)

	h1, ok := p.Hint(1)
	if !ok || h1 != "add" {
		t.Fatalf("hint 1: got %q, %v", h1, ok)
	}
	h2, ok := p.Hint(2)
	if !ok || h2 != "carry the one" {
		t.Fatalf("hint 2: got %q, %v", h2, ok)
	}
	if _, ok := p.Hint(3); ok {
		t.Fatal("hint 3 should not exist")
	}
	if _, ok := p.Hint(0); ok {
		t.Fatal("hint 0 should not exist")
	}
}

func TestParse_DuplicateNumber(t *testing.T) {
	src := `{"problems": [
		{"problem_number": 1, "problem": "a", "hints": {}, "solutions": []},
		{"problem_number": 1, "problem": "b", "hints": {}, "solutions": []}
	]}`
	_, err := Parse([]byte(src))
	if err == nil {
		t.Fatal("expected error for duplicate problem number")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParse_NonContiguousHints(t *testing.T) {
	src := `{"problems": [
		{"problem_number": 1, "problem": "a", "hints": {"1": "x", "3": "y"}, "solutions": []}
	]}`
	_, err := Parse([]byte(src))
	if err == nil {
		t.Fatal("expected error for non-contiguous hint keys")
	}
	if !strings.Contains(err.Error(), "contiguous") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParse_NonNumericHintKey(t *testing.T) {
	src := `{"problems": [
		{"problem_number": 1, "problem": "a", "hints": {"first": "x"}, "solutions": []}
	]}`
	_, err := Parse([]byte(src))
	if err == nil {
		t.Fatal("expected error for non-numeric hint key")
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte(`{"problems": []}`))
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing problem_number": `{"problems": [{"problem": "a", "hints": {}, "solutions": []}]}`,
		"empty statement":        `{"problems": [{"problem_number": 1, "problem": "", "hints": {}, "solutions": []}]}`,
		"unknown field":          `{"problems": [{"problem_number": 1, "problem": "a", "hints": {}, "solutions": [], "extra": true}]}`,
		"solution missing text":  `{"problems": [{"problem_number": 1, "problem": "a", "hints": {}, "solutions": [{"method": "m"}]}]}`,
		"not valid JSON":         `{"problems": [`,
	}
	for name, src := range cases {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.json")
	if err := os.WriteFile(path, []byte(validSource), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 problems, got %d", cat.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLookup_Missing(t *testing.T) {
	cat := New([]Problem{{Number: 1, Statement: "a"}})
	if _, ok := cat.Lookup(2); ok {
		t.Fatal("expected lookup miss for unknown number")
	}
}
