package spacenet

import "github.com/dhconnelly/rtreego"

// The R-tree rejects zero-length rect dimensions, so degenerate extents get
// padded by a hair.
const indexEpsilon = 1e-9

type tileEntry struct {
	path string
	ext  Extent
}

// Bounds implements rtreego.Spatial.
func (t *tileEntry) Bounds() rtreego.Rect {
	rect, _ := rtreego.NewRect(rectOf(t.ext))
	return rect
}

func rectOf(e Extent) (rtreego.Point, []float64) {
	a := e.AxisAligned()
	w := a.Right - a.Left
	h := a.Top - a.Bottom
	if w < indexEpsilon {
		w = indexEpsilon
	}
	if h < indexEpsilon {
		h = indexEpsilon
	}
	return rtreego.Point{a.Left, a.Bottom}, []float64{w, h}
}

// TileIndex answers which tiles intersect a viewport without rescanning every
// extent.
type TileIndex struct {
	rtree *rtreego.Rtree
}

func NewTileIndex() *TileIndex {
	return &TileIndex{rtree: rtreego.NewTree(2, 25, 50)}
}

func (x *TileIndex) Insert(path string, ext Extent) {
	x.rtree.Insert(&tileEntry{path: path, ext: ext})
}

func (x *TileIndex) Len() int {
	return x.rtree.Size()
}

// Search returns the paths of all tiles whose extent intersects view.
func (x *TileIndex) Search(view Extent) (paths []string) {
	rect, err := rtreego.NewRect(rectOf(view))
	if err != nil {
		return
	}
	for _, s := range x.rtree.SearchIntersect(rect) {
		paths = append(paths, s.(*tileEntry).path)
	}
	return
}
