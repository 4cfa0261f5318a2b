// Package catalog holds the immutable set of problems served by the
// tutor. Problems are loaded once at startup from a JSON file and never
// change for the process lifetime. The Catalog is injected into the
// components that need it; there is no package-level singleton.
package catalog

import "slices"

// Solution is one worked solution for a problem.
type Solution struct {
	Method string `json:"method"`
	Text   string `json:"solution"`
}

// Problem is a single catalog entry. Hints are ordered: Hints[0] is
// hint 1, Hints[1] is hint 2, and so on.
type Problem struct {
	Number    int
	Statement string
	Hints     []string
	Solutions []Solution
}

// HintCount returns the number of hints available for the problem.
func (p Problem) HintCount() int {
	return len(p.Hints)
}

// Hint returns the 1-based hint n, or ("", false) when n is out of range.
func (p Problem) Hint(n int) (string, bool) {
	if n < 1 || n > len(p.Hints) {
		return "", false
	}
	return p.Hints[n-1], true
}

// Catalog is an indexed, immutable collection of problems.
type Catalog struct {
	problems []Problem
	byNumber map[int]*Problem
	max      int
}

// New builds a Catalog from a slice of problems, ordered by problem
// number ascending.
func New(problems []Problem) *Catalog {
	c := &Catalog{
		problems: slices.Clone(problems),
		byNumber: make(map[int]*Problem, len(problems)),
	}
	slices.SortFunc(c.problems, func(a, b Problem) int {
		return a.Number - b.Number
	})
	for i := range c.problems {
		c.byNumber[c.problems[i].Number] = &c.problems[i]
		if c.problems[i].Number > c.max {
			c.max = c.problems[i].Number
		}
	}
	return c
}

// Lookup returns the problem with the given number. Absence is a normal
// user-facing condition (e.g. past the last problem), not an error.
func (c *Catalog) Lookup(number int) (Problem, bool) {
	p, ok := c.byNumber[number]
	if !ok {
		return Problem{}, false
	}
	return *p, true
}

// Max returns the highest problem number in the catalog.
func (c *Catalog) Max() int {
	return c.max
}

// Len returns the number of problems.
func (c *Catalog) Len() int {
	return len(c.problems)
}

// Problems returns all problems ordered by number.
func (c *Catalog) Problems() []Problem {
	return slices.Clone(c.problems)
}
