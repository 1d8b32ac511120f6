package catalog_test

import (
	"errors"
	"testing"
	"time"

	"github.com/JaimeStill/promptd/internal/catalog"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func fixture() []catalog.Prompt {
	return []catalog.Prompt{
		{ID: "alpha", Title: "Alpha", Version: "1", UpdatedAt: fixedNow, Body: "first"},
		{ID: "beta", Title: "Beta", Version: "7", UpdatedAt: fixedNow, Body: "second"},
	}
}

func TestDefault(t *testing.T) {
	cat := catalog.Default(fixedNow)

	if cat.Len() != 3 {
		t.Fatalf("len: got %d, want 3", cat.Len())
	}

	want := []struct {
		id, version, body string
	}{
		{"welcome", "1", "You are a helpful assistant. Always be concise."},
		{"coding", "3", "Write clear, readable code with comments explaining why, not how."},
		{"analysis", "2", "Think step-by-step, list assumptions, and summarize key insights."},
	}

	for i, p := range cat.List() {
		if p.ID != want[i].id || p.Version != want[i].version || p.Body != want[i].body {
			t.Errorf("prompt %d: got %+v, want %+v", i, p, want[i])
		}
		if !p.UpdatedAt.Equal(fixedNow) {
			t.Errorf("prompt %d updated at: got %v", i, p.UpdatedAt)
		}
	}

	if got := cat.ETag(); got != `W/"index-v1"` {
		t.Errorf("catalog etag: got %s", got)
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		version string
		prompts []catalog.Prompt
		wantErr error
	}{
		{"empty version", "", fixture(), catalog.ErrInvalid},
		{
			"duplicate id",
			"1",
			append(fixture(), catalog.Prompt{ID: "alpha", Title: "Again", Version: "2", UpdatedAt: fixedNow, Body: "dup"}),
			catalog.ErrDuplicateID,
		},
		{"missing id", "1", []catalog.Prompt{{Title: "T", Version: "1", UpdatedAt: fixedNow, Body: "b"}}, catalog.ErrInvalid},
		{"missing version", "1", []catalog.Prompt{{ID: "x", Title: "T", UpdatedAt: fixedNow, Body: "b"}}, catalog.ErrInvalid},
		{"missing timestamp", "1", []catalog.Prompt{{ID: "x", Title: "T", Version: "1", Body: "b"}}, catalog.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.New(tt.version, tt.prompts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	prompts := fixture()
	cat, err := catalog.New("1", prompts)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	prompts[0].Body = "mutated"
	listed := cat.List()
	listed[1].Body = "also mutated"

	p, _ := cat.Find("alpha")
	if p.Body != "first" {
		t.Errorf("input mutation leaked: %q", p.Body)
	}
	p, _ = cat.Find("beta")
	if p.Body != "second" {
		t.Errorf("list mutation leaked: %q", p.Body)
	}
}

func TestFind(t *testing.T) {
	cat, err := catalog.New("1", fixture())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	p, err := cat.Find("beta")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if p.Title != "Beta" {
		t.Errorf("title: got %s, want Beta", p.Title)
	}

	if _, err := cat.Find("Beta"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("case-sensitive lookup: got %v, want ErrNotFound", err)
	}
	if _, err := cat.Find(""); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("empty id: got %v, want ErrNotFound", err)
	}
}

func TestPromptETag(t *testing.T) {
	cat := catalog.Default(fixedNow)

	seen := map[string]string{}
	for _, p := range cat.List() {
		tag := p.ETag()
		if tag != `W/"`+p.ID+"-v"+p.Version+`"` {
			t.Errorf("%s: etag %s", p.ID, tag)
		}
		if other, dup := seen[tag]; dup {
			t.Errorf("etag %s shared by %s and %s", tag, other, p.ID)
		}
		seen[tag] = p.ID
	}

	p, _ := cat.Find("coding")
	if p.ETag() != `W/"coding-v3"` {
		t.Errorf("coding etag: got %s", p.ETag())
	}
}

func TestUpdatedAtString(t *testing.T) {
	p := catalog.Prompt{UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.FixedZone("X", 3600))}
	if got := p.UpdatedAtString(); got != "2026-01-02T02:04:05.006Z" {
		t.Errorf("updated at: got %s", got)
	}
}
