package spacenet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/FraserParlane/spacenet/log"

	gdal "github.com/airbusgeo/godal"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoadTile decodes one raster into band arrays plus its affine geotransform.
// The whole grid is read at once; tiles are expected to fit in memory.
func (g *MosaicToolbox) LoadTile(tif string) (tile *RasterTile, err error) {
	sds, err := gdal.Open(tif, gdal.RasterOnly())
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer sds.Close()
	gt, err := sds.GeoTransform()
	if err != nil {
		log.Error(g.logTag+"tif has no geotransform", zap.String("tif", tif), zap.Error(err))
		err = ErrMissingTransform
		return
	}
	tifBands := sds.Bands()
	bc := len(tifBands)
	var kind RasterKind
	switch {
	case bc == PAN_BAND_COUNT:
		kind = KindPAN
	case bc >= RGB_BAND_COUNT:
		kind = KindPSRGB
	default:
		log.Error(g.logTag+"tif bands not displayable", zap.String("tif", tif), zap.Int("bands", bc))
		err = ErrWrongBandCount
		return
	}
	st := sds.Structure()
	w, h := st.SizeX, st.SizeY
	if w <= 0 || h <= 0 {
		log.Error(g.logTag+"tif has void raster size", zap.String("tif", tif), zap.Int("width", w), zap.Int("height", h))
		err = ErrWrongTif
		return
	}
	log.Info(g.logTag+"start read tif", zap.String("tif", tif), zap.Int("bands", bc), zap.Int("width", w), zap.Int("height", h))
	bands := make([][]float64, bc)
	for i := 0; i < bc; i++ {
		band := tifBands[i]
		bandStruct := band.Structure()
		if bandStruct.SizeX != w || bandStruct.SizeY != h {
			log.Error(g.logTag+"tif band size mismatch", zap.String("tif", tif), zap.Int("band", i))
			err = ErrWrongTif
			return
		}
		buf := make([]float64, w*h)
		if err = band.IO(gdal.IORead, 0, 0, buf, w, h); err != nil {
			log.Error(g.logTag+"read tif band failed", zap.String("tif", tif), zap.Int("band", i), zap.Error(err))
			err = ErrTifReadFailed
			return
		}
		bands[i] = buf
	}
	tile = &RasterTile{
		Path:         tif,
		Kind:         kind,
		Width:        w,
		Height:       h,
		GeoTransform: gt,
		Bands:        bands,
	}
	return
}

// WriteMosaic stacks the given tiles into one LZW-compressed GTiff through a
// temporary VRT. Tiles must already share a spatial reference.
func (g *MosaicToolbox) WriteMosaic(tifs []string, out string) (err error) {
	if len(tifs) == 0 {
		err = ErrEmptyTif
		return
	}
	tmpVrt := filepath.Join(g.tmpDir, fmt.Sprintf(TMP_VRT, uuid.NewString()))
	defer os.Remove(tmpVrt)
	log.Info(g.logTag+"merge rasters", zap.Int("tif_cnt", len(tifs)), zap.String("out", out))
	ods, err := gdal.BuildVRT(tmpVrt, tifs, []string{"-resolution", "highest", "-overwrite"})
	if err != nil {
		log.Error(g.logTag+"failed to build vrt", zap.Error(err))
		return
	}
	defer ods.Close()
	finalDs, err := ods.Translate(out, []string{"-co", "compress=lzw"})
	if err != nil {
		log.Error(g.logTag+"failed to translate vrt", zap.Error(err))
		return
	}
	finalDs.Close()
	return
}
