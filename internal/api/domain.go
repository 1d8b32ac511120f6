package api

import "github.com/JaimeStill/promptd/internal/prompts"

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Prompts prompts.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Prompts: prompts.New(runtime.Catalog, runtime.Logger),
	}
}
