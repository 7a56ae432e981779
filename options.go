package g2d

import "github.com/gogpu/g2d/backend"

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default backend (highest-priority registered backend)
//	gc, err := g2d.New(800, 600)
//
//	// Explicit backend (dependency injection)
//	gc, err := g2d.New(800, 600, g2d.WithBackend(myBackend))
type ContextOption func(*contextOptions)

type contextOptions struct {
	backend   backend.Backend
	typefaces *TypefaceCache
}

// WithBackend selects the backend the context renders through instead
// of the registry default.
func WithBackend(b backend.Backend) ContextOption {
	return func(o *contextOptions) {
		o.backend = b
	}
}

// WithTypefaceCache installs a private typeface cache instead of the
// cache shared by all contexts on the same backend.
func WithTypefaceCache(tc *TypefaceCache) ContextOption {
	return func(o *contextOptions) {
		o.typefaces = tc
	}
}
