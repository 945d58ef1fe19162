package spacenet

import "testing"

func TestTileExtent(t *testing.T) {
	tile := &RasterTile{
		Width:        10,
		Height:       5,
		GeoTransform: [6]float64{100, 2, 0, 200, 0, -2},
	}
	ext := TileExtent(tile)
	want := Extent{Left: 100, Right: 120, Bottom: 190, Top: 200}
	if ext != want {
		t.Fatalf("got %+v, want %+v", ext, want)
	}
	// pure function, same tile twice must agree
	if again := TileExtent(tile); again != ext {
		t.Fatalf("extent not deterministic: %+v vs %+v", again, ext)
	}
}

func TestTileExtentAxisAlignedTransform(t *testing.T) {
	tile := &RasterTile{
		Width:        256,
		Height:       128,
		GeoTransform: [6]float64{2.3, 0.0005, 0, 48.9, 0, -0.0005},
	}
	ext := TileExtent(tile)
	if ext.Left >= ext.Right {
		t.Fatalf("left %f not below right %f", ext.Left, ext.Right)
	}
	if ext.Bottom >= ext.Top {
		t.Fatalf("bottom %f not below top %f", ext.Bottom, ext.Top)
	}
}

func TestTileExtentRotated(t *testing.T) {
	tile := &RasterTile{
		Width:        10,
		Height:       10,
		GeoTransform: [6]float64{0, 1, 0.5, 0, 0.5, 1},
	}
	ext := TileExtent(tile)
	// positive pixel height flips the vertical ordering
	if ext.Bottom <= ext.Top {
		t.Fatalf("expected raw extent unordered, got %+v", ext)
	}
	a := ext.AxisAligned()
	if a.Left > a.Right || a.Bottom > a.Top {
		t.Fatalf("axis aligned extent still unordered: %+v", a)
	}
}

func TestTileExtentDegenerate(t *testing.T) {
	tile := &RasterTile{Width: 4, Height: 4}
	ext := TileExtent(tile)
	if ext != (Extent{}) {
		t.Fatalf("zero transform should give zero-area extent, got %+v", ext)
	}
	span := ext.Span()
	if span != [4]float64{} {
		t.Fatalf("unexpected span %v", span)
	}
}

func TestExtentWkt(t *testing.T) {
	ext := Extent{Left: 100, Right: 120, Bottom: 190, Top: 200}
	if got, want := ext.Wkt(), SpanToWkt([4]float64{100, 120, 190, 200}); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
