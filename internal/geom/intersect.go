package geom

import "math"

// Intersect returns the region common to both sets. Rings are
// intersected pairwise; results from all pairs are concatenated under
// the even-odd rule.
func Intersect(a, b Set) Set {
	var out Set
	for _, ra := range a {
		if len(ra) < 3 {
			continue
		}
		for _, rb := range b {
			if len(rb) < 3 {
				continue
			}
			out = append(out, intersectRings(ra, rb)...)
		}
	}
	return out
}

// vertex is a node in the doubly-linked vertex list used by the
// clipping walk. Intersection nodes carry a link to their twin in the
// other ring.
type vertex struct {
	p          Point
	next, prev *vertex
	intersect  bool
	entry      bool
	neighbor   *vertex
	alpha      float64
	visited    bool
}

// intersectRings clips one simple ring against another. It walks edge
// crossings, alternating between the two boundaries. Rings without
// crossings resolve by containment.
func intersectRings(subject, clip Ring) []Ring {
	sHead := buildList(subject)
	cHead := buildList(clip)
	if sHead == nil || cHead == nil {
		return nil
	}

	found := insertIntersections(sHead, cHead)
	if !found {
		if clip.Contains(sHead.p) {
			return []Ring{subject}
		}
		if subject.Contains(cHead.p) {
			return []Ring{clip}
		}
		return nil
	}

	markEntries(sHead, clip)
	markEntries(cHead, subject)

	var out []Ring
	for start := nextUnvisited(sHead); start != nil; start = nextUnvisited(sHead) {
		ring := Ring{start.p}
		v := start
		for {
			v.visited = true
			if v.neighbor != nil {
				v.neighbor.visited = true
			}
			if v.entry {
				for {
					v = v.next
					ring = append(ring, v.p)
					if v.intersect {
						break
					}
				}
			} else {
				for {
					v = v.prev
					ring = append(ring, v.p)
					if v.intersect {
						break
					}
				}
			}
			v = v.neighbor
			if v == start || v == start.neighbor {
				break
			}
		}
		if ring[0] == ring[len(ring)-1] {
			ring = ring[:len(ring)-1]
		}
		if len(ring) >= 3 {
			out = append(out, ring)
		}
	}
	return out
}

// buildList turns a ring into a circular vertex list, dropping
// consecutive duplicate points and a duplicated closing point.
func buildList(r Ring) *vertex {
	pts := make([]Point, 0, len(r))
	for _, p := range r {
		if len(pts) > 0 && pts[len(pts)-1] == p {
			continue
		}
		pts = append(pts, p)
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil
	}
	head := &vertex{p: pts[0]}
	tail := head
	for _, p := range pts[1:] {
		v := &vertex{p: p, prev: tail}
		tail.next = v
		tail = v
	}
	tail.next = head
	head.prev = tail
	return head
}

// insertIntersections finds all proper crossings between edges of the
// two lists and splices intersection vertices into both, keeping them
// ordered along each edge.
func insertIntersections(sHead, cHead *vertex) bool {
	found := false
	for sv := sHead; ; {
		sNext := nextOriginal(sv)
		for cv := cHead; ; {
			cNext := nextOriginal(cv)
			t, u, ok := segmentCross(sv.p, sNext.p, cv.p, cNext.p)
			if ok {
				p := Point{
					X: sv.p.X + t*(sNext.p.X-sv.p.X),
					Y: sv.p.Y + t*(sNext.p.Y-sv.p.Y),
				}
				is := &vertex{p: p, intersect: true, alpha: t}
				ic := &vertex{p: p, intersect: true, alpha: u}
				is.neighbor = ic
				ic.neighbor = is
				spliceAfter(sv, sNext, is)
				spliceAfter(cv, cNext, ic)
				found = true
			}
			cv = cNext
			if cv == cHead {
				break
			}
		}
		sv = sNext
		if sv == sHead {
			break
		}
	}
	return found
}

// nextOriginal returns the next non-intersection vertex.
func nextOriginal(v *vertex) *vertex {
	n := v.next
	for n.intersect {
		n = n.next
	}
	return n
}

// spliceAfter inserts nv between a and b, ordered by alpha among any
// intersections already inserted on the same edge.
func spliceAfter(a, b, nv *vertex) {
	cur := a
	for cur.next != b && cur.next.alpha < nv.alpha {
		cur = cur.next
	}
	nv.next = cur.next
	nv.prev = cur
	cur.next.prev = nv
	cur.next = nv
}

// markEntries assigns entry/exit flags to the intersection vertices of
// a list relative to the other ring. Flags alternate along the
// boundary, seeded by whether the first vertex lies inside.
func markEntries(head *vertex, other Ring) {
	entry := !other.Contains(head.p)
	for v := head; ; {
		if v.intersect {
			v.entry = entry
			entry = !entry
		}
		v = v.next
		if v == head {
			break
		}
	}
}

func nextUnvisited(head *vertex) *vertex {
	for v := head; ; {
		if v.intersect && !v.visited {
			return v
		}
		v = v.next
		if v == head {
			return nil
		}
	}
}

// segmentCross reports a proper crossing of segments (p1, p2) and
// (q1, q2), returning the parameters along each. Crossings at segment
// endpoints and parallel overlaps are not reported.
func segmentCross(p1, p2, q1, q2 Point) (t, u float64, ok bool) {
	d1x := p2.X - p1.X
	d1y := p2.Y - p1.Y
	d2x := q2.X - q1.X
	d2y := q2.Y - q1.Y
	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-12 {
		return 0, 0, false
	}
	wx := q1.X - p1.X
	wy := q1.Y - p1.Y
	t = (wx*d2y - wy*d2x) / denom
	u = (wx*d1y - wy*d1x) / denom
	const eps = 1e-9
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return 0, 0, false
	}
	return t, u, true
}
