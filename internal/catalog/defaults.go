package catalog

import "time"

// DefaultVersion tags the built-in catalog.
const DefaultVersion = "1"

// Default returns the built-in catalog. Every record is stamped with now.
func Default(now time.Time) *Catalog {
	return mustNew(DefaultVersion, defaultPrompts(now))
}

func defaultPrompts(now time.Time) []Prompt {
	now = now.UTC()
	return []Prompt{
		{
			ID:        "welcome",
			Title:     "Welcome System Prompt",
			Version:   "1",
			UpdatedAt: now,
			Body:      "You are a helpful assistant. Always be concise.",
		},
		{
			ID:        "coding",
			Title:     "Coding System Prompt",
			Version:   "3",
			UpdatedAt: now,
			Body:      "Write clear, readable code with comments explaining why, not how.",
		},
		{
			ID:        "analysis",
			Title:     "Analysis System Prompt",
			Version:   "2",
			UpdatedAt: now,
			Body:      "Think step-by-step, list assumptions, and summarize key insights.",
		},
	}
}

func mustNew(version string, prompts []Prompt) *Catalog {
	c, err := New(version, prompts)
	if err != nil {
		panic(err)
	}
	return c
}
