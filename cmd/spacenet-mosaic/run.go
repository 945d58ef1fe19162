package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/FraserParlane/spacenet"
	"github.com/FraserParlane/spacenet/log"
	"github.com/FraserParlane/spacenet/utils"

	"go.uber.org/zap"
	pb "gopkg.in/cheggaaa/pb.v1"
)

// run is the driving loop: tiles are processed strictly one at a time, each
// tile discarded before the next is loaded, so peak memory stays at roughly
// one decoded tile.
func run(extraDirs []string) error {
	start := time.Now()
	defer log.Sync()

	tileDirs := append(append([]string{}, conf.Input.PanDirs...), conf.Input.RgbDirs...)
	tileDirs = append(tileDirs, extraDirs...)

	var tifs []string
	for _, dir := range tileDirs {
		paths, err := utils.ListFilesWithExt(dir, spacenet.FILE_EXT_TIF, spacenet.FILE_EXT_TIFF)
		if err != nil {
			return fmt.Errorf("list tiles in %s: %w", dir, err)
		}
		tifs = append(tifs, paths...)
	}

	if err := os.MkdirAll(conf.Output.Directory, os.ModePerm); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tb := spacenet.NewMosaicToolbox(conf.Output.Directory)
	bounds := spacenet.NewMosaicBounds()
	index := spacenet.NewTileIndex()

	var loaded []string
	bar := pb.StartNew(len(tifs))
	for _, tif := range tifs {
		bar.Increment()
		tile, err := tb.LoadTile(tif)
		if err != nil {
			if conf.Run.Strict {
				bar.Finish()
				return fmt.Errorf("decode %s: %w", tif, err)
			}
			log.Warn("skip undecodable tile", zap.String("tif", tif), zap.Error(err))
			continue
		}
		ext := spacenet.TileExtent(tile)
		// the renderer consumes the normalized pixels; here they are only
		// produced and dropped with the tile
		if _, err = spacenet.Normalize(tile); err != nil {
			if conf.Run.Strict {
				bar.Finish()
				return fmt.Errorf("normalize %s: %w", tif, err)
			}
			log.Warn("skip tile with no display mapping", zap.String("tif", tif), zap.Error(err))
			continue
		}
		bounds = bounds.Fold(ext)
		index.Insert(tif, ext)
		loaded = append(loaded, tif)
	}
	bar.Finish()

	span, err := bounds.Range()
	if err != nil {
		return fmt.Errorf("no drawable mosaic range: %w", err)
	}
	log.Info("mosaic bounds folded",
		zap.Int("tiles", len(loaded)),
		zap.Float64("xMin", span[0]), zap.Float64("xMax", span[1]),
		zap.Float64("yMin", span[2]), zap.Float64("yMax", span[3]))

	roadLines, roadSkipped := 0, 0
	for _, dir := range conf.Input.RoadDirs {
		paths, err := utils.ListFilesWithExt(dir, spacenet.FILE_EXT_GEOJSON, spacenet.FILE_EXT_SHP)
		if err != nil {
			return fmt.Errorf("list overlays in %s: %w", dir, err)
		}
		for _, path := range paths {
			var ov *spacenet.RoadOverlay
			if filepath.Ext(path) == spacenet.FILE_EXT_SHP {
				ov, err = tb.LoadShapefileOverlay(path, utils.ReadCpgEncoding(path))
			} else {
				ov, err = tb.LoadRoadOverlay(path)
			}
			if err != nil {
				if conf.Run.Strict {
					return fmt.Errorf("decode overlay %s: %w", path, err)
				}
				log.Warn("skip undecodable overlay", zap.String("file", path), zap.Error(err))
				continue
			}
			roadLines += len(ov.Lines)
			roadSkipped += ov.Skipped
		}
	}

	if conf.Output.Mosaic != "" {
		if err = tb.WriteMosaic(loaded, conf.Output.Mosaic); err != nil {
			return fmt.Errorf("write mosaic: %w", err)
		}
	}

	log.Info("mosaic run done",
		zap.String("title", conf.App.Title),
		zap.Int("tiles", len(loaded)),
		zap.Int("roadLines", roadLines),
		zap.Int("roadSkipped", roadSkipped),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
