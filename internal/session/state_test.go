package session

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/mathtutor/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Problem{
		{Number: 1, Statement: "2 + 2?", Hints: []string{"add", "carry the one"}},
		{Number: 2, Statement: "7 x 8?", Hints: []string{"double 7 x 4"}},
		{Number: 3, Statement: "10 - 4?"},
	})
}

func TestNew(t *testing.T) {
	s := New()
	if s.CurrentProblem != 1 {
		t.Fatalf("expected current problem 1, got %d", s.CurrentProblem)
	}
	if s.UserID != nil {
		t.Fatal("expected no user on fresh session")
	}
}

func TestRevealNextHint_InOrder(t *testing.T) {
	cat := testCatalog()
	p, _ := cat.Lookup(1)
	s := New()

	s, hint, ok := s.RevealNextHint(p)
	if !ok || hint != "add" {
		t.Fatalf("first reveal: got %q, %v", hint, ok)
	}
	s, hint, ok = s.RevealNextHint(p)
	if !ok || hint != "carry the one" {
		t.Fatalf("second reveal: got %q, %v", hint, ok)
	}

	// Exhausted: state unchanged, ok false.
	after, hint, ok := s.RevealNextHint(p)
	if ok || hint != "" {
		t.Fatalf("third reveal should fail, got %q, %v", hint, ok)
	}
	if after.HintsShown[1] != 2 {
		t.Fatalf("counter changed on exhausted reveal: %d", after.HintsShown[1])
	}
}

func TestRevealNextHint_NoHints(t *testing.T) {
	cat := testCatalog()
	p, _ := cat.Lookup(3)
	if _, _, ok := New().RevealNextHint(p); ok {
		t.Fatal("expected no hint for hintless problem")
	}
}

func TestRevealNextHint_PerProblemCounters(t *testing.T) {
	cat := testCatalog()
	p1, _ := cat.Lookup(1)
	p2, _ := cat.Lookup(2)

	s := New()
	s, _, _ = s.RevealNextHint(p1)
	s, _, _ = s.RevealNextHint(p2)

	if s.HintsShown[1] != 1 || s.HintsShown[2] != 1 {
		t.Fatalf("counters not independent: %v", s.HintsShown)
	}
}

func TestVisibleHints_Cumulative(t *testing.T) {
	cat := testCatalog()
	p, _ := cat.Lookup(1)

	s := New()
	if got := s.VisibleHints(p); got != nil {
		t.Fatalf("expected no visible hints, got %v", got)
	}

	s, _, _ = s.RevealNextHint(p)
	got := s.VisibleHints(p)
	if len(got) != 1 || got[0] != "add" {
		t.Fatalf("after one reveal: %v", got)
	}

	s, _, _ = s.RevealNextHint(p)
	got = s.VisibleHints(p)
	if len(got) != 2 || got[1] != "carry the one" {
		t.Fatalf("after two reveals: %v", got)
	}
}

func TestAdvance_ClampsAtLast(t *testing.T) {
	cat := testCatalog()
	s := New()

	s, moved := s.Advance(cat.Max())
	if !moved || s.CurrentProblem != 2 {
		t.Fatalf("advance 1->2: %d, %v", s.CurrentProblem, moved)
	}
	s, moved = s.Advance(cat.Max())
	if !moved || s.CurrentProblem != 3 {
		t.Fatalf("advance 2->3: %d, %v", s.CurrentProblem, moved)
	}

	s, moved = s.Advance(cat.Max())
	if moved {
		t.Fatal("advance past last problem should report false")
	}
	if s.CurrentProblem != 3 {
		t.Fatalf("current problem moved past last: %d", s.CurrentProblem)
	}
}

func TestNormalize_ClampsTamperedState(t *testing.T) {
	cat := testCatalog()

	cases := []struct {
		name string
		in   State
		want int
	}{
		{"zero value", State{}, 1},
		{"negative", State{CurrentProblem: -5}, 1},
		{"past max", State{CurrentProblem: 99}, 3},
		{"in range", State{CurrentProblem: 2}, 2},
	}
	for _, tc := range cases {
		got := tc.in.Normalize(cat)
		if got.CurrentProblem != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got.CurrentProblem, tc.want)
		}
	}
}

func TestNormalize_HintCounters(t *testing.T) {
	cat := testCatalog()

	s := State{
		CurrentProblem: 1,
		HintsShown: map[int]int{
			1:  99, // over the problem's hint count
			2:  -1, // negative
			42: 5,  // unknown problem
		},
	}
	got := s.Normalize(cat)

	if got.HintsShown[1] != 2 {
		t.Fatalf("over-count not clamped: %d", got.HintsShown[1])
	}
	if got.HintsShown[2] != 0 {
		t.Fatalf("negative count not clamped: %d", got.HintsShown[2])
	}
	if _, ok := got.HintsShown[42]; ok {
		t.Fatal("unknown problem counter not dropped")
	}

	// The input state is never mutated.
	if s.HintsShown[1] != 99 || s.HintsShown[42] != 5 {
		t.Fatal("Normalize mutated its receiver")
	}
}

func TestState_JSONRoundTrip(t *testing.T) {
	id := 7
	s := State{
		CurrentProblem: 2,
		HintsShown:     map[int]int{1: 2},
		UserID:         &id,
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var back State
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}

	if back.CurrentProblem != 2 || back.HintsShown[1] != 2 {
		t.Fatalf("round trip lost data: %+v", back)
	}
	if back.UserID == nil || *back.UserID != 7 {
		t.Fatalf("round trip lost user: %+v", back.UserID)
	}
}
