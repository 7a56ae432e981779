// Package g2d provides an immediate-mode 2D vector-drawing context that
// translates every call onto a pluggable canvas backend.
//
// # Overview
//
// g2d exposes the familiar stateful drawing surface - shapes, text,
// images, paints, gradients, strokes, clipping and affine transforms -
// while the actual rendering is performed by a backend canvas with its
// own matrix, clip stack and shader model (see the backend package).
// The core of the library is the translation layer: it keeps a retained
// user-space transform in lockstep with the backend matrix, emulates
// settable clipping over the backend's save/restore-and-intersect
// primitives, converts shape outlines to backend paths, and maps paint,
// gradient, stroke and font state onto the shared backend paint object.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/g2d"
//	    _ "github.com/gogpu/g2d/backend/softraster"
//	)
//
//	gc, err := g2d.New(512, 512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gc.Dispose()
//
//	gc.SetColor(g2d.RGB(1, 0, 0))
//	gc.FillOval(156, 156, 200, 200)
//
// # Derived Contexts
//
// Create returns a derived context that copies the current state and
// shares the backend canvas. Derived contexts must be disposed in
// last-created-first-disposed order relative to siblings sharing a
// canvas, since each one holds a backend save mark.
//
// # Concurrency
//
// A Context is single-threaded: it reuses scratch geometry and mutates a
// shared backend paint in place. The only state shared across contexts
// is the typeface cache, which is safe for concurrent use.
package g2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
