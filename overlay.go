package spacenet

import (
	"os"

	"github.com/FraserParlane/spacenet/log"
	"github.com/FraserParlane/spacenet/utils"

	ogr "github.com/lukeroth/gdal"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// LoadRoadOverlay parses a GeoJSON feature collection of road lines. Each
// LineString feature becomes one polyline. Multi-part geometries are a known
// gap: they are skipped and counted, never an error.
func (g *MosaicToolbox) LoadRoadOverlay(path string) (ret *RoadOverlay, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error(g.logTag+"read geojson failed", zap.String("file", path), zap.Error(err))
		return
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		log.Error(g.logTag+"parse geojson failed", zap.String("file", path), zap.Error(err))
		err = ErrInvalidGeoJSON
		return
	}
	ret = &RoadOverlay{
		Source: path,
		Lines:  make([]RoadLine, 0, len(fc.Features)),
	}
	for _, f := range fc.Features {
		switch geom := f.Geometry.(type) {
		case orb.LineString:
			ret.Lines = append(ret.Lines, RoadLine{Name: featureName(f), Line: geom})
		default:
			ret.Skipped++
		}
	}
	if ret.Skipped > 0 {
		log.Warn(g.logTag+"skipped multi-part road features", zap.String("file", path), zap.Int("skipped", ret.Skipped))
	}
	log.Info(g.logTag+"road overlay loaded", zap.String("file", path), zap.Int("lines", len(ret.Lines)))
	return
}

func featureName(f *geojson.Feature) (name string) {
	if f.Properties != nil {
		name, _ = f.Properties[SHP_FIELD_NAME].(string)
	}
	return
}

// LoadShapefileOverlay reads road lines from an ESRI shapefile layer. cpg is
// the declared attribute encoding ("" or anything not UTF-8 is treated as
// GBK, matching how these layers come out of common desktop tools).
func (g *MosaicToolbox) LoadShapefileOverlay(shp, cpg string) (ret *RoadOverlay, err error) {
	driver := ogr.OGRDriverByName(SHP_DRIVER_NAME)
	ds, ok := driver.Open(shp, 0)
	if !ok {
		log.Error(g.logTag+"open shp failed", zap.String("shp", shp))
		err = ErrGdalDriverOpen
		return
	}
	defer ds.Destroy()
	var (
		layer   = ds.LayerByIndex(0)
		nameIdx = layer.Definition().FieldIndex(SHP_FIELD_NAME)
		isGbk   = cpg != SHAPE_ENCODING && cpg != UTF8_ENC
		feature *ogr.Feature
		name    string
		gc      []destroyable
	)
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	ret = &RoadOverlay{Source: shp}
	for {
		if feature = layer.NextFeature(); feature == nil {
			break
		}
		gc = append(gc, *feature)
		geo := feature.Geometry()
		switch geo.Type() {
		case ogr.GT_LineString, ogr.GT_LineString25D:
			n := geo.PointCount()
			line := make(orb.LineString, n)
			for i := 0; i < n; i++ {
				line[i] = orb.Point{geo.X(i), geo.Y(i)}
			}
			name = ""
			if nameIdx >= 0 {
				name = feature.FieldAsString(nameIdx)
				if isGbk {
					if u, e := utils.GbkStrToUtf8(name); e == nil {
						name = u
					}
				}
			}
			ret.Lines = append(ret.Lines, RoadLine{Name: name, Line: line})
		default:
			ret.Skipped++
		}
	}
	if ret.Skipped > 0 {
		log.Warn(g.logTag+"skipped multi-part road features", zap.String("shp", shp), zap.Int("skipped", ret.Skipped))
	}
	log.Info(g.logTag+"road overlay loaded", zap.String("shp", shp), zap.Int("lines", len(ret.Lines)))
	return
}
