package spacenet

import (
	"fmt"
	"math"
)

// Extent is the world-coordinate bounding rectangle of one tile, in the
// geotransform tutorial convention. For rotated or skewed transforms the
// four values keep their algebraic orientation: Left/Right (and Bottom/Top)
// are not guaranteed min/max-ordered, use AxisAligned for that.
type Extent struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// TileExtent derives the extent from the tile's geotransform and pixel
// dimensions. Pure; a degenerate all-zero transform yields a zero-area
// extent, not an error.
func TileExtent(t *RasterTile) (ext Extent) {
	gt := t.GeoTransform
	w := float64(t.Width)
	h := float64(t.Height)
	ext.Left = gt[0]
	ext.Right = gt[0] + w*gt[1] + h*gt[2]
	ext.Bottom = gt[3] + w*gt[4] + h*gt[5]
	ext.Top = gt[3]
	return
}

// AxisAligned reorders the extent into a min/max box.
func (e Extent) AxisAligned() Extent {
	return Extent{
		Left:   math.Min(e.Left, e.Right),
		Right:  math.Max(e.Left, e.Right),
		Bottom: math.Min(e.Bottom, e.Top),
		Top:    math.Max(e.Bottom, e.Top),
	}
}

// Span returns the axis-aligned [minX, maxX, minY, maxY] quadruple.
func (e Extent) Span() (span [4]float64) {
	a := e.AxisAligned()
	span[0] = a.Left
	span[1] = a.Right
	span[2] = a.Bottom
	span[3] = a.Top
	return
}

func (e Extent) Wkt() string {
	return SpanToWkt(e.Span())
}

func PointsToWkt(lon1, lon2, lat1, lat2 float64) string {
	return fmt.Sprintf("POLYGON((%[1]f %[3]f, %[1]f %[4]f, %[2]f %[4]f, %[2]f %[3]f, %[1]f %[3]f))", lon1, lon2, lat1, lat2)
}

func SpanToWkt(span [4]float64) string {
	return PointsToWkt(span[0], span[1], span[2], span[3])
}
