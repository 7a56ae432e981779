// Package geom provides flat polygon geometry used for clip region
// arithmetic. Curved outlines are flattened to rings of line segments;
// region intersection then operates on the rings.
package geom

import "math"

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Ring is a closed polygon boundary. The closing edge from the last
// point back to the first is implicit.
type Ring []Point

// Set is a collection of rings forming a region under the even-odd
// rule.
type Set []Ring

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Intersects reports whether two boxes overlap.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinX < o.MaxX && o.MinX < b.MaxX &&
		b.MinY < o.MaxY && o.MinY < b.MaxY
}

// Bounds returns the bounding box of the ring. An empty ring yields a
// zero box.
func (r Ring) Bounds() Bounds {
	if len(r) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: r[0].X, MinY: r[0].Y, MaxX: r[0].X, MaxY: r[0].Y}
	for _, p := range r[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Contains reports whether p is inside the ring under the even-odd
// rule, using a horizontal ray cast.
func (r Ring) Contains(p Point) bool {
	inside := false
	n := len(r)
	for i := 0; i < n; i++ {
		a := r[i]
		b := r[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Bounds returns the bounding box of all rings in the set.
func (s Set) Bounds() Bounds {
	if len(s) == 0 {
		return Bounds{}
	}
	b := s[0].Bounds()
	for _, r := range s[1:] {
		rb := r.Bounds()
		b.MinX = math.Min(b.MinX, rb.MinX)
		b.MinY = math.Min(b.MinY, rb.MinY)
		b.MaxX = math.Max(b.MaxX, rb.MaxX)
		b.MaxY = math.Max(b.MaxY, rb.MaxY)
	}
	return b
}

// Contains reports whether p is inside the region under the even-odd
// rule across all rings.
func (s Set) Contains(p Point) bool {
	inside := false
	for _, r := range s {
		if r.Contains(p) {
			inside = !inside
		}
	}
	return inside
}

// Empty reports whether the set has no ring with at least three points.
func (s Set) Empty() bool {
	for _, r := range s {
		if len(r) >= 3 {
			return false
		}
	}
	return true
}
