package sketch

// Point is a position in device screen coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Mapper translates raster coordinates into device screen coordinates. The
// offsets are computed once and stay fixed for the drawing session.
type Mapper struct {
	offsetX int
	offsetY int
}

func NewMapper(layout Layout, screenHeight int, cfg Config) Mapper {
	return Mapper{
		offsetX: layout.MarginPx + cfg.OffsetXAdjust,
		offsetY: (screenHeight-layout.CanvasHeight)/2 + cfg.OffsetYAdjust,
	}
}

// Map returns the swipe endpoints for a segment.
func (m Mapper) Map(seg Segment) (from, to Point) {
	from = Point{X: m.offsetX + seg.StartCol, Y: m.offsetY + seg.Row}
	to = Point{X: m.offsetX + seg.EndCol, Y: m.offsetY + seg.Row}
	return from, to
}
