package spacenet

import "errors"

var (
	ErrInvalidTif       = errors.New("gdal invalid tif")
	ErrWrongTif         = errors.New("gdal malformed tif")
	ErrTifReadFailed    = errors.New("gdal tif read failed")
	ErrMissingTransform = errors.New("tif has no geotransform")
	ErrWrongBandCount   = errors.New("tif band count not displayable")
	ErrEmptyTif         = errors.New("empty tif")
	ErrGdalDriverOpen   = errors.New("gdal driver open err")
	ErrInvalidGeoJSON   = errors.New("invalid GeoJSON")
	ErrFlatBand         = errors.New("band has zero value range")
	ErrEmptyMosaic      = errors.New("mosaic bounds folded zero tiles")
)
