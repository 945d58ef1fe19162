package spacenet

import "github.com/paulmach/orb"

// RasterKind tags a tile as single-band panchromatic or pan-sharpened RGB.
// Kind is plain data; normalization branches on it with a switch.
type RasterKind int

const (
	KindUnknown RasterKind = iota
	KindPAN
	KindPSRGB
)

func (k RasterKind) String() string {
	switch k {
	case KindPAN:
		return "PAN"
	case KindPSRGB:
		return "PS-RGB"
	default:
		return "unknown"
	}
}

// RasterTile is one decoded scene. Immutable after load.
type RasterTile struct {
	Path         string
	Kind         RasterKind
	Width        int
	Height       int
	GeoTransform [6]float64  // [originX, pixelW, rowRot, originY, colRot, pixelH]
	Bands        [][]float64 // each band is Width*Height, row-major
}

func (t *RasterTile) BandCount() int {
	return len(t.Bands)
}

func (t *RasterTile) At(band, row, col int) float64 {
	return t.Bands[band][row*t.Width+col]
}

// NormalizedImage holds displayable pixels, channel-interleaved.
type NormalizedImage struct {
	Width    int
	Height   int
	Channels int
	Pix      []float64 // index = (row*Width+col)*Channels + ch
}

func (m *NormalizedImage) At(row, col, ch int) float64 {
	return m.Pix[(row*m.Width+col)*m.Channels+ch]
}

type RoadLine struct {
	Name string
	Line orb.LineString
}

// RoadOverlay is an ordered set of road polylines in the same
// world-coordinate space as the tile extents.
type RoadOverlay struct {
	Source  string
	Lines   []RoadLine
	Skipped int // multi-part features we do not draw yet
}
