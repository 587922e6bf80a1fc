package mosaic

import (
	"github.com/dhconnelly/rtreego"
	"github.com/rs/zerolog"

	"github.com/cartolab/mosaic/internal/projection"
)

// SubProjection is one territory's projection instance inside a composite,
// together with the layout knobs the composite needs to re-derive its
// absolute scale, translate, and clip extent. A SubProjection is owned by
// exactly one CompositeProjection.
type SubProjection struct {
	Code            string
	Name            string
	Role            Role
	ProjectionID    string
	Family          Family
	Projection      *Projection
	Bounds          Bounds
	ScaleMultiplier float64
	TranslateOffset [2]float64
	// ClipExtentOffset is the configured center-relative clip rectangle,
	// nil when the territory uses the scale-derived default.
	ClipExtentOffset *[2][2]float64
}

// clipExtent returns the sub-projection's current absolute clip rectangle.
func (s *SubProjection) clipExtent() [2][2]float64 {
	if r := s.Projection.ClipExtent(); r != nil {
		return *r
	}
	// Factory-built sub-projections always carry a clip extent; this is a
	// safety net for hand-assembled ones.
	return DefaultClipExtent(s.Projection.Scale(), s.Projection.Translate())
}

// CompositeProjection combines N sub-projections into one object satisfying
// the standard projection contract. Forward projection routes each
// coordinate to the first sub-projection (in config order) whose clip
// extent contains the projected result; streaming fans every geometry event
// out to all sub-projections, each of which clips independently.
type CompositeProjection struct {
	pattern        Pattern
	metadata       Metadata
	referenceScale float64
	width, height  float64

	subs    []*SubProjection
	primary *SubProjection

	index *rtreego.Rtree
	clip  *[2][2]float64

	cacheSink   Stream
	cacheStream Stream

	logger zerolog.Logger
}

// territoryRect indexes one sub-projection's clip rectangle in the R-tree
// used for inverse (pixel to territory) routing.
type territoryRect struct {
	sub  *SubProjection
	pos  int
	rect [2][2]float64
}

func (t *territoryRect) Bounds() rtreego.Rect {
	r, _ := rtreego.NewRect(
		rtreego.Point{t.rect[0][0], t.rect[0][1]},
		[]float64{t.rect[1][0] - t.rect[0][0], t.rect[1][1] - t.rect[0][1]},
	)
	return r
}

func newCompositeProjection(cfg *Config, subs []*SubProjection, width, height float64, logger zerolog.Logger) *CompositeProjection {
	c := &CompositeProjection{
		pattern:        cfg.Pattern,
		metadata:       cfg.Metadata,
		referenceScale: cfg.ReferenceScale,
		width:          width,
		height:         height,
		subs:           subs,
		logger:         logger,
	}
	if c.referenceScale <= 0 {
		c.referenceScale = DefaultReferenceScale
	}
	for _, s := range subs {
		if s.Role == RolePrimary {
			c.primary = s
			break
		}
	}
	// Equal-members atlases have no primary; the first territory acts as
	// the reference for composite-level scale and translate.
	if c.primary == nil && len(subs) > 0 {
		c.primary = subs[0]
	}
	c.rebuildIndex()
	return c
}

// SubProjections returns the sub-projections in config order.
func (c *CompositeProjection) SubProjections() []*SubProjection {
	return append([]*SubProjection(nil), c.subs...)
}

// SubProjection returns the sub-projection for a territory code.
func (c *CompositeProjection) SubProjection(code string) (*SubProjection, bool) {
	for _, s := range c.subs {
		if s.Code == code {
			return s, true
		}
	}
	return nil, false
}

// Pattern returns the atlas pattern the composite was built from.
func (c *CompositeProjection) Pattern() Pattern { return c.pattern }

// ReferenceScale returns the scale assigned to the primary territory, from
// which every territory's absolute scale derives via its multiplier.
func (c *CompositeProjection) ReferenceScale() float64 { return c.referenceScale }

// CanvasSize returns the canvas dimensions the composite was laid out for.
func (c *CompositeProjection) CanvasSize() (width, height float64) {
	return c.width, c.height
}

// Project maps [longitude, latitude] degrees to pixel coordinates. The
// point is projected with every sub-projection and claimed by the first
// one, in config order, whose clip extent contains the result; config
// order is the documented tie-break should clip rectangles overlap. ok is
// false when no sub-projection claims the point.
func (c *CompositeProjection) Project(coord [2]float64) (xy [2]float64, ok bool) {
	_, xy, ok = c.route(coord)
	return xy, ok
}

// TerritoryFor returns the code of the territory that claims the
// coordinate, with the same routing rule as Project.
func (c *CompositeProjection) TerritoryFor(coord [2]float64) (string, bool) {
	code, _, ok := c.route(coord)
	return code, ok
}

func (c *CompositeProjection) route(coord [2]float64) (string, [2]float64, bool) {
	for _, s := range c.subs {
		xy, ok := s.Projection.Project(coord)
		if !ok {
			continue
		}
		rect := s.clipExtent()
		if !rectContains(rect, xy[0], xy[1]) {
			continue
		}
		if c.clip != nil && !rectContains(*c.clip, xy[0], xy[1]) {
			continue
		}
		return s.Code, xy, true
	}
	return "", [2]float64{}, false
}

// Invert maps pixel coordinates back to [longitude, latitude] degrees by
// locating the sub-projection whose clip rectangle contains the pixel and
// applying its inverse. ok is false when no rectangle contains the point
// or the owning projection has no inverse.
func (c *CompositeProjection) Invert(xy [2]float64) ([2]float64, bool) {
	sub := c.subFor(xy)
	if sub == nil {
		return [2]float64{}, false
	}
	return sub.Projection.Invert(xy)
}

// subFor finds the territory whose clip rectangle contains the pixel,
// resolving overlaps by config order.
func (c *CompositeProjection) subFor(xy [2]float64) *SubProjection {
	if c.index == nil {
		return nil
	}
	point, _ := rtreego.NewRect(rtreego.Point{xy[0], xy[1]}, []float64{1e-9, 1e-9})
	var best *territoryRect
	for _, hit := range c.index.SearchIntersect(point) {
		tr := hit.(*territoryRect)
		if !rectContains(tr.rect, xy[0], xy[1]) {
			continue
		}
		if best == nil || tr.pos < best.pos {
			best = tr
		}
	}
	if best == nil {
		return nil
	}
	return best.sub
}

// Scale returns the primary sub-projection's scale.
func (c *CompositeProjection) Scale() float64 {
	if c.primary == nil {
		return c.referenceScale
	}
	return c.primary.Projection.Scale()
}

// SetScale sets the primary sub-projection's scale to v and every other
// sub-projection's scale to v times its multiplier, then rebuilds every
// clip extent. Idempotent: repeating the same v leaves all state unchanged.
func (c *CompositeProjection) SetScale(v float64) *CompositeProjection {
	c.referenceScale = v
	for _, s := range c.subs {
		if s == c.primary {
			s.Projection.SetScale(v)
		} else {
			s.Projection.SetScale(v * s.ScaleMultiplier)
		}
	}
	c.relayout()
	return c
}

// Translate returns the primary sub-projection's translate point.
func (c *CompositeProjection) Translate() [2]float64 {
	if c.primary == nil {
		return [2]float64{c.width / 2, c.height / 2}
	}
	return c.primary.Projection.Translate()
}

// SetTranslate moves the primary sub-projection to [x, y] and every other
// sub-projection to [x+offsetX, y+offsetY] for its configured offset, then
// rebuilds every clip extent. Idempotent.
func (c *CompositeProjection) SetTranslate(t [2]float64) *CompositeProjection {
	for _, s := range c.subs {
		if s == c.primary {
			s.Projection.SetTranslate(t)
		} else {
			s.Projection.SetTranslate([2]float64{t[0] + s.TranslateOffset[0], t[1] + s.TranslateOffset[1]})
		}
	}
	c.relayout()
	return c
}

// relayout recomputes every sub-projection's clip extent from its current
// scale and translate, rebuilds the inverse-routing index, and invalidates
// the stream cache.
func (c *CompositeProjection) relayout() {
	for _, s := range c.subs {
		translate := s.Projection.Translate()
		var rect [2][2]float64
		if s.ClipExtentOffset != nil {
			rect = PixelClipExtentFromOffset(translate, *s.ClipExtentOffset)
			if !ValidPixelRect(rect) {
				rect = DefaultClipExtent(s.Projection.Scale(), translate)
			}
		} else {
			rect = DefaultClipExtent(s.Projection.Scale(), translate)
		}
		s.Projection.SetClipExtent(&rect)
	}
	c.rebuildIndex()
	c.invalidate()
}

func (c *CompositeProjection) rebuildIndex() {
	c.index = rtreego.NewTree(2, 25, 50)
	for i, s := range c.subs {
		c.index.Insert(&territoryRect{sub: s, pos: i, rect: s.clipExtent()})
	}
}

func (c *CompositeProjection) invalidate() {
	c.cacheSink = nil
	c.cacheStream = nil
}

// Precision returns the primary sub-projection's resampling precision.
func (c *CompositeProjection) Precision() float64 {
	if c.primary == nil {
		return 0
	}
	return c.primary.Projection.Precision()
}

// SetPrecision sets the resampling precision on every sub-projection.
func (c *CompositeProjection) SetPrecision(precision float64) *CompositeProjection {
	for _, s := range c.subs {
		s.Projection.SetPrecision(precision)
	}
	c.invalidate()
	return c
}

// ClipExtent returns the composite-level clip rectangle, nil when unset.
// Sub-projection clip extents are unaffected by it.
func (c *CompositeProjection) ClipExtent() *[2][2]float64 {
	if c.clip == nil {
		return nil
	}
	r := *c.clip
	return &r
}

// SetClipExtent sets an additional viewport rectangle applied on top of
// every sub-projection's own clip extent. Pass nil to remove it.
func (c *CompositeProjection) SetClipExtent(extent *[2][2]float64) *CompositeProjection {
	if extent == nil {
		c.clip = nil
	} else {
		r := *extent
		c.clip = &r
	}
	c.invalidate()
	return c
}

// Stream returns a stream that forwards every geometry event to all
// sub-projections' transform chains, each wrapping the same sink with its
// own clipping. A single input geometry may therefore contribute pieces to
// several territories.
//
// The multiplexed stream is cached per sink identity and rebuilt after
// SetScale, SetTranslate, or SetClipExtent.
func (c *CompositeProjection) Stream(sink Stream) Stream {
	if c.cacheStream != nil && c.cacheSink == sink {
		return c.cacheStream
	}
	out := sink
	if c.clip != nil {
		out = projection.NewClipRectStream(c.clip[0][0], c.clip[0][1], c.clip[1][0], c.clip[1][1], sink)
	}
	streams := make([]Stream, len(c.subs))
	for i, s := range c.subs {
		streams[i] = s.Projection.Stream(out)
	}
	c.cacheSink = sink
	c.cacheStream = projection.Fanout(streams)
	return c.cacheStream
}

// CompositionBorders returns each territory's clip rectangle in pixel
// space, in config order. Renderers draw these as the inset frames of the
// composite.
func (c *CompositeProjection) CompositionBorders() [][2][2]float64 {
	out := make([][2][2]float64, len(c.subs))
	for i, s := range c.subs {
		out[i] = s.clipExtent()
	}
	return out
}

// StreamCompositionBorders emits every territory's clip rectangle outline
// on the sink as a closed line ring.
func (c *CompositeProjection) StreamCompositionBorders(sink Stream) {
	for _, rect := range c.CompositionBorders() {
		sink.LineStart()
		sink.Point(rect[0][0], rect[0][1])
		sink.Point(rect[1][0], rect[0][1])
		sink.Point(rect[1][0], rect[1][1])
		sink.Point(rect[0][0], rect[1][1])
		sink.Point(rect[0][0], rect[0][1])
		sink.LineEnd()
	}
}
