// Package prompts implements the read-only prompt endpoints over a catalog.
package prompts

import "github.com/JaimeStill/promptd/internal/catalog"

// Summary is the list projection of a prompt. The body is deliberately omitted.
type Summary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Version   string `json:"version"`
	UpdatedAt string `json:"updatedAt"`
}

// Content is the detail projection of a prompt: the body and nothing else.
type Content struct {
	Body string `json:"body"`
}

func toSummary(p catalog.Prompt) Summary {
	return Summary{
		ID:        p.ID,
		Title:     p.Title,
		Version:   p.Version,
		UpdatedAt: p.UpdatedAtString(),
	}
}

func toContent(p catalog.Prompt) Content {
	return Content{Body: p.Body}
}
