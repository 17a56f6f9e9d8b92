// Package spatial implements an adaptive region quadtree over a fixed
// world rectangle, supporting fast range, point, and pairwise-candidate
// queries.
//
// The structure is grounded on two shapes from the Recast/Detour
// navmesh toolkit: recast's chunky triangle mesh (recast.ChunkyTriMesh),
// which adaptively splits a flat list of axis-aligned bounds into
// balanced buckets, and detour's per-tile bounding-volume tree, which
// answers range queries by walking a node list and testing bounds
// overlap at each step. Both are static, build-once structures; this
// quadtree generalizes the same bounds-driven subdivision idea to
// incremental insertion.
package spatial

import (
	"github.com/arl/assertgo"

	"github.com/WenyinWei/zlayout/geometry"
	"github.com/WenyinWei/zlayout/internal/diag"
)

// DefaultCapacity is the default number of items a leaf holds before
// subdividing.
const DefaultCapacity = 10

// DefaultMaxDepth is the default remaining-depth budget at the root.
const DefaultMaxDepth = 8

// Handle identifies an object stored in the index. Handles are
// assigned by the caller (typically layout.Processor) and are opaque
// to the index itself.
type Handle int

// quadrant is the fixed child-insertion order: NW, NE, SW, SE.
type quadrant int

const (
	quadNW quadrant = iota
	quadNE
	quadSW
	quadSE
)

type entry struct {
	handle Handle
	bbox   geometry.Rectangle
}

// node is a single quadtree node: a boundary, its stored entries, and
// (once subdivided) four children in NW, NE, SW, SE order. Nodes are
// created lazily on subdivision, are owned exclusively by their
// parent, and are never detached, rebalanced, or removed.
type node struct {
	boundary  geometry.Rectangle
	capacity  int
	maxDepth  int
	entries   []entry
	divided   bool
	children  [4]*node
}

func newNode(boundary geometry.Rectangle, capacity, maxDepth int) *node {
	return &node{boundary: boundary, capacity: capacity, maxDepth: maxDepth}
}

// subdivide splits the node into four equal-area quadrants, cutting at
// the boundary's midpoint. Children inherit capacity and maxDepth-1.
func (n *node) subdivide() {
	if n.divided {
		return
	}
	x, y, w, h := n.boundary.X, n.boundary.Y, n.boundary.W/2, n.boundary.H/2
	childDepth := n.maxDepth - 1

	n.children[quadNW] = newNode(geometry.NewRectangle(x, y+h, w, h), n.capacity, childDepth)
	n.children[quadNE] = newNode(geometry.NewRectangle(x+w, y+h, w, h), n.capacity, childDepth)
	n.children[quadSW] = newNode(geometry.NewRectangle(x, y, w, h), n.capacity, childDepth)
	n.children[quadSE] = newNode(geometry.NewRectangle(x+w, y, w, h), n.capacity, childDepth)
	n.divided = true

	assert.True(n.children[quadNW] != nil && n.children[quadSE] != nil,
		"quadtree: subdivide must produce four children")
}

// insert implements the insertion protocol of spec §4.3. A subdivided
// node passes bbox to the first child (NW, NE, SW, SE) whose boundary
// fully contains it, and keeps it itself when none does. It returns
// (stored, stackedAtLimit): stored is false only when bbox does not
// intersect the node's boundary; stackedAtLimit is true only when the
// object was stored at a full leaf because the depth budget was
// exhausted.
func (n *node) insert(log *diag.Logger, h Handle, bbox geometry.Rectangle) (stored bool, stackedAtLimit bool) {
	if !n.boundary.Intersects(bbox) {
		return false, false
	}

	if !n.divided && len(n.entries) < n.capacity {
		n.entries = append(n.entries, entry{handle: h, bbox: bbox})
		return true, false
	}

	if !n.divided && n.maxDepth > 0 {
		n.subdivide()
	}

	if n.divided {
		for _, c := range n.children {
			b := c.boundary
			if bbox.Left() < b.Left() || bbox.Right() > b.Right() ||
				bbox.Bottom() < b.Bottom() || bbox.Top() > b.Top() {
				continue
			}
			if ok, stacked := c.insert(log, h, bbox); ok {
				return true, stacked
			}
		}
		// No child boundary fully contains bbox: it straddles a split.
		n.entries = append(n.entries, entry{handle: h, bbox: bbox})
		return true, false
	}

	// Depth exhausted: stack here regardless of capacity.
	log.Warningf("quadtree: depth exhausted, stacking handle %d at a full leaf", h)
	n.entries = append(n.entries, entry{handle: h, bbox: bbox})
	return true, true
}

func (n *node) rangeQuery(q geometry.Rectangle, out *[]Handle) {
	if !n.boundary.Intersects(q) {
		return
	}
	for _, e := range n.entries {
		if e.bbox.Intersects(q) {
			*out = append(*out, e.handle)
		}
	}
	if n.divided {
		for _, c := range n.children {
			c.rangeQuery(q, out)
		}
	}
}

func (n *node) pointQuery(p geometry.Point, out *[]Handle) {
	if !n.boundary.ContainsPoint(p) {
		return
	}
	for _, e := range n.entries {
		if e.bbox.ContainsPoint(p) {
			*out = append(*out, e.handle)
		}
	}
	if n.divided {
		for _, c := range n.children {
			c.pointQuery(p, out)
		}
	}
}

func (n *node) collect(out *[]entry) {
	*out = append(*out, n.entries...)
	if n.divided {
		for _, c := range n.children {
			c.collect(out)
		}
	}
}

func (n *node) count() int {
	total := len(n.entries)
	if n.divided {
		for _, c := range n.children {
			total += c.count()
		}
	}
	return total
}

// QuadTree is a region quadtree over a fixed world rectangle. Every
// object it stores must have a bounding rectangle that intersects the
// world rectangle, or insertion is refused (spec §7's OutOfBounds
// soft error). The tree never rebalances or shrinks: removal is not
// supported at the node level (spec §4.3).
type QuadTree struct {
	root         *node
	worldBounds  geometry.Rectangle
	objectCount  int
	log          *diag.Logger
}

// New returns a QuadTree over worldBounds, with the given per-leaf
// capacity and maximum subdivision depth. It panics if capacity <= 0
// or maxDepth < 0: a degenerate tree can never do useful work, so
// this is treated as a programmer error rather than a soft or
// InvalidArgument condition surfaced through a return value.
func New(worldBounds geometry.Rectangle, capacity, maxDepth int) *QuadTree {
	if capacity <= 0 {
		panic("spatial: capacity must be positive")
	}
	if maxDepth < 0 {
		panic("spatial: maxDepth must be non-negative")
	}
	return &QuadTree{
		root:        newNode(worldBounds, capacity, maxDepth),
		worldBounds: worldBounds,
		log:         diag.New(false),
	}
}

// NewDefault returns a QuadTree over worldBounds using DefaultCapacity
// and DefaultMaxDepth.
func NewDefault(worldBounds geometry.Rectangle) *QuadTree {
	return New(worldBounds, DefaultCapacity, DefaultMaxDepth)
}

// EnableLog turns on diagnostic logging (e.g. depth-exhaustion
// warnings) on this tree.
func (q *QuadTree) EnableLog(enabled bool) {
	q.log = diag.New(enabled)
}

// WorldBounds returns the tree's fixed world rectangle.
func (q *QuadTree) WorldBounds() geometry.Rectangle {
	return q.worldBounds
}

// Insert stores h under bbox. It returns false (refused) if bbox does
// not intersect the world boundary; the object counter is not
// incremented in that case. This is an OutOfBounds soft error:
// insertion failure is signaled only through the return value.
func (q *QuadTree) Insert(h Handle, bbox geometry.Rectangle) bool {
	stored, _ := q.root.insert(q.log, h, bbox)
	if stored {
		q.objectCount++
	}
	return stored
}

// RangeQuery returns every stored handle whose bounding rectangle
// intersects qr. Return order is stable across repeated calls on an
// unchanged tree (pre-order: a node's own entries, then its children
// in NW, NE, SW, SE order).
func (q *QuadTree) RangeQuery(qr geometry.Rectangle) []Handle {
	var out []Handle
	q.root.rangeQuery(qr, &out)
	return out
}

// PointQuery returns every stored handle whose bounding rectangle
// contains p.
func (q *QuadTree) PointQuery(p geometry.Point) []Handle {
	var out []Handle
	q.root.pointQuery(p, &out)
	return out
}

// Size returns the number of objects successfully inserted.
func (q *QuadTree) Size() int {
	return q.objectCount
}

// PairCandidates enumerates candidate pairs for pairwise analysis: for
// every stored object O with bbox B, it range-queries B and emits
// (O, O') for each returned candidate O' with O before O' by ascending
// handle, deduplicating each unordered pair exactly once. No
// geometric refinement beyond bbox overlap is performed — callers
// apply exact predicates to the candidates.
func (q *QuadTree) PairCandidates() [][2]Handle {
	var all []entry
	q.root.collect(&all)

	var pairs [][2]Handle
	for _, e := range all {
		candidates := q.RangeQuery(e.bbox)
		for _, c := range candidates {
			if e.handle < c {
				pairs = append(pairs, [2]Handle{e.handle, c})
			}
		}
	}
	return pairs
}
