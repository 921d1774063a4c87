package admin

import "github.com/shopmono/shopmono/internal/provider"

// Handler serves the admin-only catalog management API.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
