package spacenet

import "testing"

func TestTileIndexSearch(t *testing.T) {
	idx := NewTileIndex()
	idx.Insert("a.tif", Extent{Left: 0, Right: 10, Bottom: 0, Top: 10})
	idx.Insert("b.tif", Extent{Left: 100, Right: 110, Bottom: 100, Top: 110})
	if idx.Len() != 2 {
		t.Fatalf("want 2 entries, got %d", idx.Len())
	}
	hits := idx.Search(Extent{Left: 5, Right: 15, Bottom: 5, Top: 15})
	if len(hits) != 1 || hits[0] != "a.tif" {
		t.Fatalf("unexpected hits %v", hits)
	}
	hits = idx.Search(Extent{Left: -10, Right: 200, Bottom: -10, Top: 200})
	if len(hits) != 2 {
		t.Fatalf("want both tiles, got %v", hits)
	}
	if hits = idx.Search(Extent{Left: 50, Right: 60, Bottom: 50, Top: 60}); len(hits) != 0 {
		t.Fatalf("want no hits, got %v", hits)
	}
}

func TestTileIndexDegenerateExtent(t *testing.T) {
	idx := NewTileIndex()
	idx.Insert("point.tif", Extent{Left: 3, Right: 3, Bottom: 4, Top: 4})
	hits := idx.Search(Extent{Left: 0, Right: 5, Bottom: 0, Top: 5})
	if len(hits) != 1 || hits[0] != "point.tif" {
		t.Fatalf("degenerate extent not indexed: %v", hits)
	}
}

func TestTileIndexInvertedView(t *testing.T) {
	idx := NewTileIndex()
	idx.Insert("a.tif", Extent{Left: 0, Right: 10, Bottom: 0, Top: 10})
	// views from rotated transforms may arrive unordered
	hits := idx.Search(Extent{Left: 15, Right: 5, Bottom: 15, Top: 5})
	if len(hits) != 1 {
		t.Fatalf("inverted view missed the tile: %v", hits)
	}
}
