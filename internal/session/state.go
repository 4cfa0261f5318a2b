// Package session models the per-session state that the client holds and
// round-trips on every interaction. Nothing here touches I/O: every
// operation is a pure transform from one state to the next, and the state
// is re-validated on arrival because it crosses a serialization boundary
// the server does not control.
package session

import (
	"github.com/abhisek/mathtutor/internal/catalog"
)

// State is the client-held session value.
type State struct {
	// CurrentProblem starts at 1 and only moves forward, clamped at the
	// catalog's maximum problem number.
	CurrentProblem int `json:"current_problem"`

	// HintsShown maps problem number to the count of hints already
	// revealed for it. A count of n means hints 1..n are displayable.
	HintsShown map[int]int `json:"hints_shown,omitempty"`

	// UserID is the resolved user, absent until login succeeds.
	UserID *int `json:"user_id,omitempty"`
}

// New returns the initial state for a fresh session.
func New() State {
	return State{CurrentProblem: 1}
}

// Normalize clamps a state received from the client into valid range.
// The client copy may be missing fields, stale, or tampered with; the
// result is always a state the rest of the pipeline can trust.
func (s State) Normalize(cat *catalog.Catalog) State {
	out := s.clone()

	if out.CurrentProblem < 1 {
		out.CurrentProblem = 1
	}
	if max := cat.Max(); out.CurrentProblem > max {
		out.CurrentProblem = max
	}

	for number, count := range out.HintsShown {
		p, ok := cat.Lookup(number)
		if !ok {
			delete(out.HintsShown, number)
			continue
		}
		if count < 0 {
			out.HintsShown[number] = 0
		} else if count > p.HintCount() {
			out.HintsShown[number] = p.HintCount()
		}
	}

	return out
}

// Advance moves to the next problem. At the catalog's last problem it
// returns the state unchanged and false — an informational "already at
// the last problem" signal, not an error.
func (s State) Advance(max int) (State, bool) {
	if s.CurrentProblem >= max {
		return s, false
	}
	out := s.clone()
	out.CurrentProblem++
	return out, true
}

// RevealNextHint reveals the next undisclosed hint for the problem.
// Hints come out strictly in order 1..K, one per call; once exhausted it
// returns false with the state unchanged. A problem's counter never
// decreases within a session.
func (s State) RevealNextHint(p catalog.Problem) (State, string, bool) {
	shown := s.HintsShown[p.Number]
	hint, ok := p.Hint(shown + 1)
	if !ok {
		return s, "", false
	}

	out := s.clone()
	if out.HintsShown == nil {
		out.HintsShown = make(map[int]int)
	}
	out.HintsShown[p.Number] = shown + 1
	return out, hint, true
}

// VisibleHints reconstructs the cumulative set of hints already revealed
// for the problem from the counter alone.
func (s State) VisibleHints(p catalog.Problem) []string {
	shown := s.HintsShown[p.Number]
	if shown <= 0 {
		return nil
	}
	if shown > p.HintCount() {
		shown = p.HintCount()
	}
	hints := make([]string, shown)
	copy(hints, p.Hints[:shown])
	return hints
}

// clone copies the state so transforms never alias the caller's map.
func (s State) clone() State {
	out := s
	if s.HintsShown != nil {
		out.HintsShown = make(map[int]int, len(s.HintsShown))
		for k, v := range s.HintsShown {
			out.HintsShown[k] = v
		}
	}
	if s.UserID != nil {
		id := *s.UserID
		out.UserID = &id
	}
	return out
}
