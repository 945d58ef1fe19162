package spacenet

const (
	FILE_EXT_TIF     = ".tif"
	FILE_EXT_TIFF    = ".tiff"
	FILE_EXT_GEOJSON = ".geojson"
	FILE_EXT_SHP     = ".shp"
	FILE_EXT_CPG     = ".cpg"

	SHAPE_ENCODING  = "UTF-8"
	UTF8_ENC        = "UTF8"
	ZH_ENC          = "GBK"
	SHP_DRIVER_NAME = "ESRI Shapefile"

	SHP_FIELD_NAME = "name"

	PAN_BAND_COUNT = 1
	RGB_BAND_COUNT = 3

	TMP_VRT = "mosaic_%s.vrt"
)
