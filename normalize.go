package spacenet

import (
	"fmt"

	"github.com/FraserParlane/spacenet/log"

	"go.uber.org/zap"
)

// Normalize picks the display normalization for the tile's kind.
func Normalize(t *RasterTile) (*NormalizedImage, error) {
	switch t.Kind {
	case KindPAN:
		return NormalizePan(t), nil
	case KindPSRGB:
		return NormalizeRgb(t), nil
	default:
		return nil, ErrWrongBandCount
	}
}

// NormalizePan returns band 0 as-is; panchromatic display keeps the raw
// intensity values.
func NormalizePan(t *RasterTile) *NormalizedImage {
	return &NormalizedImage{
		Width:    t.Width,
		Height:   t.Height,
		Channels: 1,
		Pix:      t.Bands[0],
	}
}

// NormalizeRgb rescales every channel independently into [0,1] with that
// channel's own min/max. A flat channel (max == min) is left all-zero
// instead of dividing by zero; the condition is logged per band.
func NormalizeRgb(t *RasterTile) *NormalizedImage {
	img, _ := normalizeRgb(t, false)
	return img
}

// NormalizeRgbStrict is NormalizeRgb with the flat-channel guard surfaced as
// an error instead of the all-zero policy.
func NormalizeRgbStrict(t *RasterTile) (*NormalizedImage, error) {
	return normalizeRgb(t, true)
}

func normalizeRgb(t *RasterTile, strict bool) (img *NormalizedImage, err error) {
	n := t.BandCount()
	img = &NormalizedImage{
		Width:    t.Width,
		Height:   t.Height,
		Channels: n,
		Pix:      make([]float64, t.Width*t.Height*n),
	}
	for c := 0; c < n; c++ {
		band := t.Bands[c]
		lo, hi := band[0], band[0]
		for _, v := range band[1:] {
			if v < lo {
				lo = v
			} else if v > hi {
				hi = v
			}
		}
		if hi == lo {
			if strict {
				img = nil
				err = fmt.Errorf("%w: band %d", ErrFlatBand, c)
				return
			}
			// channel stays all-zero
			log.Warn("flat band in rgb normalization", zap.String("tif", t.Path), zap.Int("band", c), zap.Float64("value", lo))
			continue
		}
		scale := 1 / (hi - lo)
		for i, v := range band {
			img.Pix[i*n+c] = (v - lo) * scale
		}
	}
	return
}
