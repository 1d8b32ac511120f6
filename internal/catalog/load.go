package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type fileCatalog struct {
	Version string       `yaml:"version"`
	Prompts []filePrompt `yaml:"prompts"`
}

type filePrompt struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Version   string    `yaml:"version"`
	UpdatedAt time.Time `yaml:"updated_at"`
	Body      string    `yaml:"body"`
}

// Load reads a catalog fixture from a YAML (or JSON) file. Records without
// updated_at are stamped with now; a missing version defaults to DefaultVersion.
func Load(path string, now time.Time) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data, now)
}

// Parse decodes a catalog fixture document. See Load.
func Parse(data []byte, now time.Time) (*Catalog, error) {
	var doc fileCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if doc.Version == "" {
		doc.Version = DefaultVersion
	}

	prompts := make([]Prompt, 0, len(doc.Prompts))
	for _, fp := range doc.Prompts {
		updated := fp.UpdatedAt
		if updated.IsZero() {
			updated = now
		}
		prompts = append(prompts, Prompt{
			ID:        fp.ID,
			Title:     fp.Title,
			Version:   fp.Version,
			UpdatedAt: updated.UTC(),
			Body:      fp.Body,
		})
	}

	return New(doc.Version, prompts)
}

// FromConfig builds the catalog selected by cfg: the fixture at cfg.Path when
// set, otherwise the built-in table tagged with cfg.Version.
func FromConfig(cfg *Config, now time.Time) (*Catalog, error) {
	if cfg.Path != "" {
		return Load(cfg.Path, now)
	}
	return New(cfg.Version, defaultPrompts(now))
}
