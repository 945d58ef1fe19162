package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	strict  bool
	outFile string
)

var rootCmd = &cobra.Command{
	Use:   "spacenet-mosaic [tileDir...]",
	Short: "Composite SpaceNet raster tiles and road overlays into one mosaic",
	Long: `spacenet-mosaic walks directories of georeferenced GeoTIFF tiles (PAN or
PS-RGB), derives each tile's world-coordinate extent, folds all extents into
one mosaic bounding box, loads GeoJSON road overlays in the same coordinate
space, and optionally writes the stacked tiles out as a single GTiff.

Tile directories can come from a conf.toml or be given as arguments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		InitConf(cfgFile)
		if cmd.Flags().Changed("strict") {
			conf.Run.Strict = strict
		}
		if outFile != "" {
			conf.Output.Mosaic = outFile
		}
		return run(args)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default conf.toml)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "abort on the first tile decode error instead of skipping")
	rootCmd.Flags().StringVarP(&outFile, "output", "o", "", "write the mosaic GTiff to this path")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
