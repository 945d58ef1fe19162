package main

import (
	"os"

	"github.com/FraserParlane/spacenet/log"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var conf *Conf

type Conf struct {
	App struct {
		Title string `toml:"title"`
	} `toml:"app"`
	Input struct {
		PanDirs  []string `toml:"panDirs"`
		RgbDirs  []string `toml:"rgbDirs"`
		RoadDirs []string `toml:"roadDirs"`
	} `toml:"input"`
	Output struct {
		Directory string `toml:"directory"`
		Mosaic    string `toml:"mosaic"`
	} `toml:"output"`
	Run struct {
		Strict bool `toml:"strict"`
	} `toml:"run"`
}

func InitConf(cfgFile string) {
	if cfgFile == "" {
		cfgFile = "conf.toml"
	}
	viper.SetConfigType("toml")
	viper.SetConfigFile(cfgFile)
	viper.AutomaticEnv()
	if _, err := os.Stat(cfgFile); err == nil {
		if err = viper.ReadInConfig(); err != nil {
			log.Warn("read config file failed", zap.String("file", viper.ConfigFileUsed()), zap.Error(err))
		}
	}
	viper.SetDefault("app.title", "SpaceNet Mosaic")
	viper.SetDefault("output.directory", "output")
	viper.SetDefault("run.strict", false)

	if err := viper.Unmarshal(&conf); err != nil {
		log.Error("config unmarshal failed", zap.Error(err))
		os.Exit(1)
	}
}
