package spacenet

import (
	"sync"

	gdal "github.com/airbusgeo/godal"
)

// MosaicToolbox bundles the GDAL-backed ingestion entry points. A toolbox
// holds no per-tile state; every Load* call yields a fresh, independent
// result.
type MosaicToolbox struct {
	tmpDir string
	logTag string
}

// Memory objects created by the GDAL C layer must be released manually.
type destroyable interface {
	Destroy()
}

var registerOnce sync.Once

// NewMosaicToolbox builds a toolbox; tmpDir is an optional scratch directory
// for intermediate artifacts (current directory when omitted).
func NewMosaicToolbox(tmpDir ...string) *MosaicToolbox {
	registerOnce.Do(gdal.RegisterAll)
	g := &MosaicToolbox{
		logTag: "MosaicToolbox:",
	}
	if len(tmpDir) > 0 && tmpDir[0] != "" {
		g.tmpDir = tmpDir[0]
	}
	return g
}
