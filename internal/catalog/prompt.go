package catalog

import (
	"time"

	"github.com/JaimeStill/promptd/pkg/etag"
)

// TimeFormat renders UpdatedAt as ISO-8601 UTC with millisecond precision.
const TimeFormat = "2006-01-02T15:04:05.000Z"

// Prompt is a single catalog record.
type Prompt struct {
	ID        string    `validate:"required"`
	Title     string    `validate:"required"`
	Version   string    `validate:"required"`
	UpdatedAt time.Time `validate:"required"`
	Body      string    `validate:"required"`
}

// ETag returns the record's weak validator, derived from its id and version.
func (p Prompt) ETag() string {
	return etag.Weak(p.ID + "-v" + p.Version)
}

// UpdatedAtString returns UpdatedAt formatted with TimeFormat.
func (p Prompt) UpdatedAtString() string {
	return p.UpdatedAt.UTC().Format(TimeFormat)
}
