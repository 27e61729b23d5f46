package geom

// GeometryType identifies the shape of a geometry.
type GeometryType int

const (
	// GeometryTypePoint is a single coordinate.
	GeometryTypePoint GeometryType = iota + 1
	// GeometryTypeLineString is an ordered coordinate sequence.
	GeometryTypeLineString
	// GeometryTypePolygon is one exterior ring plus optional holes.
	GeometryTypePolygon
)

// String returns a human-readable name for the geometry type.
func (t GeometryType) String() string {
	switch t {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Geometry is a shape that can report its minimal bounding box.
//
// A feature record owns its geometries exclusively and derives its own
// envelope by unioning theirs.
type Geometry interface {
	// Type identifies the concrete shape.
	Type() GeometryType
	// Envelope returns the minimal bounding box of the shape, or the
	// empty sentinel for a shape with no coordinates.
	Envelope() Box2D
}

// Point is a single coordinate geometry.
type Point struct {
	X float64
	Y float64
}

// Type returns GeometryTypePoint.
func (p Point) Type() GeometryType {
	return GeometryTypePoint
}

// Envelope returns the zero-area box at the point.
func (p Point) Envelope() Box2D {
	return Box2D{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// LineString is an ordered sequence of coordinates.
type LineString struct {
	Coordinates [][2]float64
}

// Type returns GeometryTypeLineString.
func (l LineString) Type() GeometryType {
	return GeometryTypeLineString
}

// Envelope returns the minimal box covering all coordinates, or the empty
// sentinel when the line has none.
func (l LineString) Envelope() Box2D {
	return envelopeOfCoords(l.Coordinates)
}

// Polygon is a ring-based area geometry. Rings[0] is the exterior ring;
// any further rings are holes. Holes never extend past the exterior ring,
// so all rings participate in the envelope uniformly.
type Polygon struct {
	Rings [][][2]float64
}

// Type returns GeometryTypePolygon.
func (p Polygon) Type() GeometryType {
	return GeometryTypePolygon
}

// Envelope returns the minimal box covering all rings, or the empty
// sentinel when the polygon has none.
func (p Polygon) Envelope() Box2D {
	box := EmptyBox2D()
	for _, ring := range p.Rings {
		box.ExpandToInclude(envelopeOfCoords(ring))
	}
	return box
}

func envelopeOfCoords(coords [][2]float64) Box2D {
	box := EmptyBox2D()
	for _, c := range coords {
		box.ExpandToIncludePoint(c[0], c[1])
	}
	return box
}
