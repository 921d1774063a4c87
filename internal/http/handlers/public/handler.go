package public

import "github.com/shopmono/shopmono/internal/provider"

// Handler serves the storefront API: auth, catalog reads, cart,
// checkout and payments.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
