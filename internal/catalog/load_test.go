package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/promptd/internal/catalog"
)

const fixtureYAML = `
version: "4"
prompts:
  - id: review
    title: Review Prompt
    version: "2"
    updated_at: 2026-03-01T12:00:00Z
    body: |
      Review the change carefully.
  - id: summary
    title: Summary Prompt
    version: "1"
    body: Summarize in one paragraph.
`

const fixtureJSON = `{
  "prompts": [
    {"id": "only", "title": "Only", "version": "9", "body": "just one"}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	cat, err := catalog.Load(writeFile(t, "catalog.yaml", fixtureYAML), fixedNow)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cat.Version() != "4" {
		t.Errorf("version: got %s, want 4", cat.Version())
	}
	if cat.ETag() != `W/"index-v4"` {
		t.Errorf("etag: got %s", cat.ETag())
	}

	list := cat.List()
	if len(list) != 2 || list[0].ID != "review" || list[1].ID != "summary" {
		t.Fatalf("order: got %+v", list)
	}
	if list[0].Body != "Review the change carefully.\n" {
		t.Errorf("body: got %q", list[0].Body)
	}
	if want := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC); !list[0].UpdatedAt.Equal(want) {
		t.Errorf("updated at: got %v, want %v", list[0].UpdatedAt, want)
	}
	if !list[1].UpdatedAt.Equal(fixedNow) {
		t.Errorf("default updated at: got %v, want %v", list[1].UpdatedAt, fixedNow)
	}
}

func TestLoadJSON(t *testing.T) {
	cat, err := catalog.Load(writeFile(t, "catalog.json", fixtureJSON), fixedNow)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cat.Version() != catalog.DefaultVersion {
		t.Errorf("version: got %s, want default", cat.Version())
	}
	if p, err := cat.Find("only"); err != nil || p.Body != "just one" {
		t.Errorf("find: got %+v, %v", p, err)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := catalog.Load(filepath.Join(t.TempDir(), "none.yaml"), fixedNow); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error: got %v, want not exist", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := catalog.Parse([]byte("prompts: [unclosed"), fixedNow); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("duplicate ids", func(t *testing.T) {
		doc := `prompts:
  - {id: a, title: A, version: "1", body: x}
  - {id: a, title: B, version: "2", body: y}
`
		if _, err := catalog.Parse([]byte(doc), fixedNow); !errors.Is(err, catalog.ErrDuplicateID) {
			t.Errorf("error: got %v, want ErrDuplicateID", err)
		}
	})
}

func TestFromConfig(t *testing.T) {
	t.Run("builtin with version", func(t *testing.T) {
		cat, err := catalog.FromConfig(&catalog.Config{Version: "2"}, fixedNow)
		if err != nil {
			t.Fatalf("from config: %v", err)
		}
		if cat.Len() != 3 || cat.ETag() != `W/"index-v2"` {
			t.Errorf("builtin: len %d etag %s", cat.Len(), cat.ETag())
		}
	})

	t.Run("fixture path", func(t *testing.T) {
		path := writeFile(t, "catalog.yaml", fixtureYAML)
		cat, err := catalog.FromConfig(&catalog.Config{Path: path, Version: "1"}, fixedNow)
		if err != nil {
			t.Fatalf("from config: %v", err)
		}
		if cat.Version() != "4" {
			t.Errorf("fixture version should win: got %s", cat.Version())
		}
	})
}

func TestConfigFinalize(t *testing.T) {
	env := &catalog.Env{Path: "TEST_CATALOG_PATH", Version: "TEST_CATALOG_VERSION"}

	t.Run("defaults", func(t *testing.T) {
		cfg := &catalog.Config{}
		if err := cfg.Finalize(env); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if cfg.Version != catalog.DefaultVersion || cfg.Path != "" {
			t.Errorf("defaults: got %+v", cfg)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		path := writeFile(t, "catalog.yaml", fixtureYAML)
		t.Setenv("TEST_CATALOG_PATH", path)
		t.Setenv("TEST_CATALOG_VERSION", "5")

		cfg := &catalog.Config{}
		if err := cfg.Finalize(env); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if cfg.Path != path || cfg.Version != "5" {
			t.Errorf("env: got %+v", cfg)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		cfg := &catalog.Config{Path: filepath.Join(t.TempDir(), "gone.yaml")}
		if err := cfg.Finalize(nil); err == nil {
			t.Error("expected error for missing catalog path")
		}
	})
}
