package mosaic

import (
	"math"

	"github.com/paulmach/orb"
)

// Projector is anything exposing the stream transform contract: a single
// Projection or a CompositeProjection.
type Projector interface {
	Stream(sink Stream) Stream
}

// StreamGeometry walks an orb geometry and emits the corresponding stream
// events. Polygon rings drop their duplicate closing point, per the stream
// contract.
//
// Combined with Projector this is how geometry reaches a renderer:
//
//	mosaic.StreamGeometry(geom, proj.Stream(sink))
func StreamGeometry(g orb.Geometry, s Stream) {
	switch g := g.(type) {
	case orb.Point:
		s.Point(g[0], g[1])
	case orb.MultiPoint:
		for _, p := range g {
			s.Point(p[0], p[1])
		}
	case orb.LineString:
		streamLine(g, s)
	case orb.MultiLineString:
		for _, ls := range g {
			streamLine(ls, s)
		}
	case orb.Ring:
		s.PolygonStart()
		streamRing(g, s)
		s.PolygonEnd()
	case orb.Polygon:
		s.PolygonStart()
		for _, ring := range g {
			streamRing(ring, s)
		}
		s.PolygonEnd()
	case orb.MultiPolygon:
		for _, poly := range g {
			s.PolygonStart()
			for _, ring := range poly {
				streamRing(ring, s)
			}
			s.PolygonEnd()
		}
	case orb.Collection:
		for _, member := range g {
			StreamGeometry(member, s)
		}
	case orb.Bound:
		StreamGeometry(g.ToPolygon(), s)
	}
}

func streamLine(ls orb.LineString, s Stream) {
	s.LineStart()
	for _, p := range ls {
		s.Point(p[0], p[1])
	}
	s.LineEnd()
}

func streamRing(ring orb.Ring, s Stream) {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		ring = ring[:n-1]
	}
	s.LineStart()
	for _, p := range ring {
		s.Point(p[0], p[1])
	}
	s.LineEnd()
}

// PathBounds projects a geometry and returns its pixel bounding box. ok is
// false when no point of the geometry survives projection and clipping.
func PathBounds(p Projector, g orb.Geometry) (bounds [2][2]float64, ok bool) {
	collector := &boundsStream{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
	StreamGeometry(g, p.Stream(collector))
	if collector.minX > collector.maxX {
		return [2][2]float64{}, false
	}
	return [2][2]float64{{collector.minX, collector.minY}, {collector.maxX, collector.maxY}}, true
}

type boundsStream struct {
	minX, minY, maxX, maxY float64
}

func (b *boundsStream) Point(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.minY = math.Min(b.minY, y)
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
}

func (b *boundsStream) LineStart()    {}
func (b *boundsStream) LineEnd()      {}
func (b *boundsStream) PolygonStart() {}
func (b *boundsStream) PolygonEnd()   {}
func (b *boundsStream) Sphere()       {}
