package prompts

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/promptd/internal/catalog"
)

type repo struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// New creates a catalog-backed System.
func New(cat *catalog.Catalog, logger *slog.Logger) System {
	return &repo{
		catalog: cat,
		logger:  logger.With("system", "prompts"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) List(ctx context.Context) ([]Summary, string, error) {
	records := r.catalog.List()
	summaries := make([]Summary, 0, len(records))
	for _, p := range records {
		summaries = append(summaries, toSummary(p))
	}
	return summaries, r.catalog.ETag(), nil
}

func (r *repo) Find(ctx context.Context, id string) (*Content, string, error) {
	p, err := r.catalog.Find(id)
	if err != nil {
		return nil, "", err
	}
	content := toContent(p)
	return &content, p.ETag(), nil
}
