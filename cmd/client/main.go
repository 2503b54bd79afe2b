package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	clientgame "github.com/cbodonnell/tilerunner/client/game"
	"github.com/cbodonnell/tilerunner/client/maps"
	"github.com/cbodonnell/tilerunner/pkg/config"
	"github.com/cbodonnell/tilerunner/pkg/game"
	"github.com/cbodonnell/tilerunner/pkg/log"
	"github.com/cbodonnell/tilerunner/pkg/tilemap"
	"github.com/cbodonnell/tilerunner/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file")
	mapPath := flag.String("map", "", "Path to a map file (overrides the config)")
	logLevel := flag.String("log-level", "", "Log level (overrides the config)")
	debug := flag.Bool("debug", false, "Show the FPS/TPS overlay")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *mapPath != "" {
		cfg.Map.Path = *mapPath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting tilerunner version %s", version.Get())

	level, err := loadLevel(cfg.Map.Path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level: %v", err))
	}
	log.Debug("Loaded level of %dx%d tiles", level.Width(), level.Height())

	manager := game.NewGameManager(game.NewGameManagerOptions{
		Level: level,
	})

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(clientgame.NewGame(clientgame.NewGameOptions{
		Manager: manager,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Debug:   *debug,
	})); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

func loadLevel(path string) (*tilemap.Map, error) {
	if path == "" {
		return tilemap.New(bytes.NewReader(maps.DefaultMap))
	}
	return tilemap.Load(path)
}
