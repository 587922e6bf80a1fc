package projection

// Stream receives a sequence of geometry events.
//
// The event grammar follows the standard cartographic streaming contract:
// points may arrive bare (point features), inside LineStart/LineEnd pairs
// (lines), or inside PolygonStart/PolygonEnd with one LineStart/LineEnd pair
// per ring. Sphere announces the full globe outline.
//
// Transforms (rotation, resampling, clipping) are implemented as streams that
// wrap a downstream sink, so a projection pipeline is a chain of streams
// ending at the consumer (typically a renderer).
type Stream interface {
	Point(x, y float64)
	LineStart()
	LineEnd()
	PolygonStart()
	PolygonEnd()
	Sphere()
}

// passthroughStream forwards every event to its sink unchanged.
// Transform streams embed it and override the events they care about.
type passthroughStream struct {
	sink Stream
}

func (s *passthroughStream) Point(x, y float64) { s.sink.Point(x, y) }
func (s *passthroughStream) LineStart()         { s.sink.LineStart() }
func (s *passthroughStream) LineEnd()           { s.sink.LineEnd() }
func (s *passthroughStream) PolygonStart()      { s.sink.PolygonStart() }
func (s *passthroughStream) PolygonEnd()        { s.sink.PolygonEnd() }
func (s *passthroughStream) Sphere()            { s.sink.Sphere() }

// Fanout returns a stream that forwards every event to each of the given
// streams, preserving per-event ordering: every stream sees event K before
// any stream sees event K+1.
func Fanout(streams []Stream) Stream {
	return &fanoutStream{streams: streams}
}

type fanoutStream struct {
	streams []Stream
}

func (f *fanoutStream) Point(x, y float64) {
	for _, s := range f.streams {
		s.Point(x, y)
	}
}

func (f *fanoutStream) LineStart() {
	for _, s := range f.streams {
		s.LineStart()
	}
}

func (f *fanoutStream) LineEnd() {
	for _, s := range f.streams {
		s.LineEnd()
	}
}

func (f *fanoutStream) PolygonStart() {
	for _, s := range f.streams {
		s.PolygonStart()
	}
}

func (f *fanoutStream) PolygonEnd() {
	for _, s := range f.streams {
		s.PolygonEnd()
	}
}

func (f *fanoutStream) Sphere() {
	for _, s := range f.streams {
		s.Sphere()
	}
}

// transformRadians converts incoming point coordinates from degrees to
// radians before forwarding. It is the first stage of every projection
// pipeline, since geometry arrives in degrees but spherical math runs in
// radians.
type transformRadians struct {
	passthroughStream
}

func (s *transformRadians) Point(x, y float64) {
	s.sink.Point(x*Radians, y*Radians)
}
