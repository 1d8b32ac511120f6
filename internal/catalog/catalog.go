// Package catalog holds the immutable, ordered set of prompt records served by promptd.
// A Catalog is built once at startup, from the built-in table or a fixture
// file, and is safe for concurrent reads because it is never mutated.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/JaimeStill/promptd/pkg/etag"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog is an immutable, ordered collection of prompts.
type Catalog struct {
	version string
	prompts []Prompt
	index   map[string]int
}

// New validates prompts and builds a Catalog tagged with version.
// The slice is copied; later changes to it do not affect the Catalog.
func New(version string, prompts []Prompt) (*Catalog, error) {
	if version == "" {
		return nil, fmt.Errorf("%w: version required", ErrInvalid)
	}

	c := &Catalog{
		version: version,
		prompts: slices.Clone(prompts),
		index:   make(map[string]int, len(prompts)),
	}

	for i, p := range c.prompts {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: prompt %d: %s", ErrInvalid, i, describe(err))
		}
		if _, exists := c.index[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		c.index[p.ID] = i
	}

	return c, nil
}

// Version returns the catalog version tag.
func (c *Catalog) Version() string {
	return c.version
}

// ETag returns the catalog-wide weak validator. It depends only on the
// catalog version tag, so it is fixed for the life of the Catalog.
func (c *Catalog) ETag() string {
	return etag.Weak("index-v" + c.version)
}

// Len returns the number of prompts.
func (c *Catalog) Len() int {
	return len(c.prompts)
}

// List returns a copy of all prompts in catalog order.
func (c *Catalog) List() []Prompt {
	return slices.Clone(c.prompts)
}

// Find returns the prompt whose id equals id exactly.
func (c *Catalog) Find(id string) (Prompt, error) {
	i, ok := c.index[id]
	if !ok {
		return Prompt{}, ErrNotFound
	}
	return c.prompts[i], nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	return fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag())
}
