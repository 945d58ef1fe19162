package spacenet

import "math"

// MosaicBounds is the running bounding box across all tiles folded so far.
// Value semantics: Fold and Merge return a new bounds, so the aggregation is
// associative and commutative and can back a parallel reduction.
type MosaicBounds struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// NewMosaicBounds starts at the {+inf,-inf,+inf,-inf} sentinel, so folding
// zero tiles stays distinguishable from any real mosaic.
func NewMosaicBounds() MosaicBounds {
	return MosaicBounds{
		XMin: math.Inf(1),
		XMax: math.Inf(-1),
		YMin: math.Inf(1),
		YMax: math.Inf(-1),
	}
}

// Fold widens the bounds by one tile extent. The extent is axis-aligned
// first, so rotated transforms cannot invert the accumulator.
func (b MosaicBounds) Fold(e Extent) MosaicBounds {
	a := e.AxisAligned()
	return MosaicBounds{
		XMin: math.Min(b.XMin, a.Left),
		XMax: math.Max(b.XMax, a.Right),
		YMin: math.Min(b.YMin, a.Bottom),
		YMax: math.Max(b.YMax, a.Top),
	}
}

// Merge combines two partial bounds; the reduction step for parallel folds.
func (b MosaicBounds) Merge(o MosaicBounds) MosaicBounds {
	return MosaicBounds{
		XMin: math.Min(b.XMin, o.XMin),
		XMax: math.Max(b.XMax, o.XMax),
		YMin: math.Min(b.YMin, o.YMin),
		YMax: math.Max(b.YMax, o.YMax),
	}
}

// Empty reports whether the bounds are still at (or below) the sentinel.
func (b MosaicBounds) Empty() bool {
	return b.XMin > b.XMax || b.YMin > b.YMax
}

// Range returns the drawable [minX, maxX, minY, maxY] span, or ErrEmptyMosaic
// when nothing has been folded in. Callers must not plot an empty range.
func (b MosaicBounds) Range() (span [4]float64, err error) {
	if b.Empty() {
		err = ErrEmptyMosaic
		return
	}
	span[0] = b.XMin
	span[1] = b.XMax
	span[2] = b.YMin
	span[3] = b.YMax
	return
}

func (b MosaicBounds) Wkt() string {
	span, err := b.Range()
	if err != nil {
		return ""
	}
	return SpanToWkt(span)
}

// FoldExtents folds a batch of extents from the sentinel.
func FoldExtents(exts ...Extent) MosaicBounds {
	b := NewMosaicBounds()
	for _, e := range exts {
		b = b.Fold(e)
	}
	return b
}
