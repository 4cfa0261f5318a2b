package tutor

import "time"

// Config holds feedback generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds a single evaluation's LLM call. Expiry degrades to
	// the fallback message like any other provider failure.
	Timeout time.Duration

	// HistoryLimit is how many recent chat rows feed the prompt.
	HistoryLimit int

	// WeakLimit is how many low-success problems feed the prompt.
	WeakLimit int
}

// DefaultConfig returns sensible defaults for feedback generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    256,
		Temperature:  0.7,
		Timeout:      30 * time.Second,
		HistoryLimit: 10,
		WeakLimit:    3,
	}
}
