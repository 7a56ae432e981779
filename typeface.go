package g2d

import (
	"sync"

	"github.com/gogpu/g2d/backend"
)

type typefaceKey struct {
	family string
	style  backend.TypefaceStyle
}

// TypefaceCache caches resolved typefaces per (family, style) pair so
// repeated font changes do not hit the font lookup machinery. It is
// safe for concurrent use. Contexts created for the same backend share
// one cache by default; pass WithTypefaceCache to isolate a context.
type TypefaceCache struct {
	backend backend.Backend

	mu      sync.Mutex
	entries map[typefaceKey]backend.Typeface
}

// NewTypefaceCache returns an empty cache resolving against b.
func NewTypefaceCache(b backend.Backend) *TypefaceCache {
	if b == nil {
		nilNotPermitted("backend")
	}
	return &TypefaceCache{
		backend: b,
		entries: make(map[typefaceKey]backend.Typeface),
	}
}

// Resolve returns the typeface for the family and style, creating and
// caching it on first use.
func (tc *TypefaceCache) Resolve(family string, style backend.TypefaceStyle) (backend.Typeface, error) {
	key := typefaceKey{family: family, style: style}
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tf, ok := tc.entries[key]; ok {
		return tf, nil
	}
	tf, err := tc.backend.MakeTypeface(family, style)
	if err != nil {
		return nil, err
	}
	tc.entries[key] = tf
	return tf, nil
}

// Len returns the number of cached typefaces.
func (tc *TypefaceCache) Len() int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return len(tc.entries)
}

var (
	sharedCachesMu sync.Mutex
	sharedCaches   = make(map[backend.Backend]*TypefaceCache)
)

// sharedTypefaceCache returns the process-wide cache for a backend.
func sharedTypefaceCache(b backend.Backend) *TypefaceCache {
	sharedCachesMu.Lock()
	defer sharedCachesMu.Unlock()
	if tc, ok := sharedCaches[b]; ok {
		return tc
	}
	tc := NewTypefaceCache(b)
	sharedCaches[b] = tc
	return tc
}
