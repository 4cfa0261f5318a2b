package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// sourceSchema describes the expected shape of the problems file. The file
// is validated against it before parsing so a malformed source fails with
// a precise message at startup rather than a zero-valued problem later.
var sourceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"problems": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"problem_number": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"problem": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"hints": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type": "string",
						},
					},
					"solutions": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"method":   map[string]any{"type": "string"},
								"solution": map[string]any{"type": "string"},
							},
							"required":             []any{"method", "solution"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"problem_number", "problem", "hints", "solutions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"problems"},
	"additionalProperties": false,
}

type sourceFile struct {
	Problems []sourceProblem `json:"problems"`
}

type sourceProblem struct {
	Number    int               `json:"problem_number"`
	Statement string            `json:"problem"`
	Hints     map[string]string `json:"hints"`
	Solutions []Solution        `json:"solutions"`
}

// Load reads and validates the problems file at path. Any failure here is
// fatal to the caller: the service cannot run without a catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problems file: %w", err)
	}
	return Parse(data)
}

// Parse builds a Catalog from raw problems JSON.
func Parse(data []byte) (*Catalog, error) {
	if err := validateSource(data); err != nil {
		return nil, fmt.Errorf("validate problems file: %w", err)
	}

	var src sourceFile
	if err := json.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("parse problems file: %w", err)
	}
	if len(src.Problems) == 0 {
		return nil, fmt.Errorf("problems file contains no problems")
	}

	seen := make(map[int]bool, len(src.Problems))
	problems := make([]Problem, 0, len(src.Problems))
	for _, sp := range src.Problems {
		if seen[sp.Number] {
			return nil, fmt.Errorf("duplicate problem number %d", sp.Number)
		}
		seen[sp.Number] = true

		hints, err := orderHints(sp.Hints)
		if err != nil {
			return nil, fmt.Errorf("problem %d: %w", sp.Number, err)
		}

		problems = append(problems, Problem{
			Number:    sp.Number,
			Statement: sp.Statement,
			Hints:     hints,
			Solutions: sp.Solutions,
		})
	}

	return New(problems), nil
}

// orderHints converts the source's {"1": ..., "2": ...} mapping into an
// ordered slice, rejecting gaps: hint keys must be contiguous from 1.
func orderHints(m map[string]string) ([]string, error) {
	if len(m) == 0 {
		return nil, nil
	}

	keys := make([]int, 0, len(m))
	for k := range m {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("hint key %q is not a number", k)
		}
		keys = append(keys, n)
	}
	sort.Ints(keys)

	hints := make([]string, 0, len(keys))
	for i, n := range keys {
		if n != i+1 {
			return nil, fmt.Errorf("hint keys are not contiguous from 1: missing hint %d", i+1)
		}
		hints = append(hints, m[strconv.Itoa(n)])
	}
	return hints, nil
}

// validateSource checks raw JSON against sourceSchema.
func validateSource(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://problems.json", sourceSchema); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema://problems.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
