// Package layout implements the single-owner geometry processor
// façade: it owns one spatial index and one set of registered
// polygons, assigns monotonically increasing handles, and composes
// the three analyzers into analysis and optimization records.
//
// Grounded on the original zlayout.analysis.GeometryProcessor, with a
// single-owner NavMesh/NavMeshQuery pairing (one index, one query
// surface, caller-serialized mutation) as the concurrency model.
package layout

import (
	"github.com/WenyinWei/zlayout/analysis"
	"github.com/WenyinWei/zlayout/geometry"
	"github.com/WenyinWei/zlayout/spatial"
)

// Handle identifies a component registered with a Processor. Handles
// are assigned in increasing order starting at 0 and are never reused.
type Handle int

type component struct {
	bbox    geometry.Rectangle
	polygon *geometry.Polygon // nil for a rectangle-only component
}

// Processor is a single-owner façade over a spatial index and a set
// of registered polygon components. It is not safe for concurrent use
// during AddRectangle/AddPolygon; see the package doc and spec §5.
type Processor struct {
	index      *spatial.QuadTree
	components map[Handle]component
	order      []Handle
	nextHandle Handle
}

// NewProcessor returns a Processor whose spatial index covers world
// using the default capacity and max-depth.
func NewProcessor(world geometry.Rectangle) *Processor {
	return &Processor{
		index:      spatial.NewDefault(world),
		components: make(map[Handle]component),
	}
}

// NewProcessorWithIndex returns a Processor backed by an index of the
// given capacity and max-depth.
func NewProcessorWithIndex(world geometry.Rectangle, capacity, maxDepth int) *Processor {
	return &Processor{
		index:      spatial.New(world, capacity, maxDepth),
		components: make(map[Handle]component),
	}
}

// AddRectangle registers a rectangle-only component: it occupies the
// spatial index but is not analyzed for sharp angles, narrow
// distances, or intersections.
func (p *Processor) AddRectangle(r geometry.Rectangle) (Handle, Status, error) {
	if _, err := geometry.NewValidRectangle(r.X, r.Y, r.W, r.H); err != nil {
		return 0, StatusOK, err
	}
	return p.insert(component{bbox: r})
}

// AddPolygon registers a polygon component: it is both inserted into
// the spatial index under its bounding rectangle and made available
// to Analyze/Optimize.
func (p *Processor) AddPolygon(poly geometry.Polygon) (Handle, Status, error) {
	if poly.VertexCount() < 3 {
		return 0, StatusOK, geometry.ErrTooFewVertices
	}
	bbox := poly.BoundingBox()
	if !bbox.Valid() {
		// A Polygon can only be built through NewPolygon, which already
		// rejects non-finite vertices; this guards against a caller
		// constructing the zero value or a literal that bypasses it.
		return 0, StatusOK, geometry.ErrNonFiniteCoordinate
	}
	return p.insert(component{bbox: bbox, polygon: &poly})
}

func (p *Processor) insert(c component) (Handle, Status, error) {
	h := p.nextHandle
	var status Status

	stored := p.index.Insert(spatial.Handle(h), c.bbox)
	if !stored {
		status |= StatusOutOfBounds
	}

	p.components[h] = c
	p.order = append(p.order, h)
	p.nextHandle++
	return h, status, nil
}

// Size returns the number of registered components.
func (p *Processor) Size() int { return len(p.components) }

// Component returns the component registered under h, if any.
func (p *Processor) Component(h Handle) (geometry.Rectangle, *geometry.Polygon, bool) {
	c, ok := p.components[h]
	return c.bbox, c.polygon, ok
}

// RangeQuery returns every handle whose bounding rectangle intersects
// qr, delegating to the underlying spatial index.
func (p *Processor) RangeQuery(qr geometry.Rectangle) []Handle {
	raw := p.index.RangeQuery(qr)
	out := make([]Handle, len(raw))
	for i, h := range raw {
		out[i] = Handle(h)
	}
	return out
}

// polygons returns the registered polygon components in handle order,
// the input shape every analyzer expects.
func (p *Processor) polygons() []analysis.IndexedPolygon {
	var out []analysis.IndexedPolygon
	for _, h := range p.order {
		c := p.components[h]
		if c.polygon != nil {
			out = append(out, analysis.IndexedPolygon{ID: analysis.PolygonID(h), Polygon: *c.polygon})
		}
	}
	return out
}

// AnalysisRecord is the combined result of the three analyzers, keyed
// the way spec §6 names them.
type AnalysisRecord struct {
	SharpAngles     analysis.SharpAngleResult
	NarrowDistances analysis.NarrowDistanceResult
	Intersections   analysis.IntersectionResult
}

// Analyze runs all three analyzers over the currently registered
// polygon components. An empty processor yields zero-filled records
// with the analyzers' own default "best" values.
func (p *Processor) Analyze(sharpThresholdDeg, narrowThreshold float64) AnalysisRecord {
	polys := p.polygons()
	return AnalysisRecord{
		SharpAngles:     analysis.SharpAngles(polys, sharpThresholdDeg),
		NarrowDistances: analysis.NarrowDistances(polys, narrowThreshold),
		Intersections:   analysis.Intersections(polys),
	}
}

// Optimize runs Analyze with the package default thresholds and
// derives a score and suggestion list from the result.
func (p *Processor) Optimize() OptimizationRecord {
	record := p.Analyze(analysis.DefaultSharpAngleThreshold, analysis.DefaultNarrowDistanceThreshold)
	return OptimizationRecord{
		AnalysisRecord: record,
		Score:          Score(record),
		Suggestions:    Suggestions(record),
	}
}
