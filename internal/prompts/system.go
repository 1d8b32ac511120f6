package prompts

import "context"

// System defines the public contract for prompt domain operations.
// Each result is returned with the weak validator that identifies it.
type System interface {
	Handler() *Handler

	List(ctx context.Context) ([]Summary, string, error)
	Find(ctx context.Context, id string) (*Content, string, error)
}
