package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"tankarena/internal/config"
	"tankarena/internal/game"
	"tankarena/internal/logging"
)

func main() {
	cfgPath := flag.String("config", "", "TOML config path (empty = built-in defaults)")
	logPath := flag.String("log", "tankarena.log", "log file path")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	zl := logging.New(*logPath, *debug)
	defer func() { _ = zl.Sync() }()

	ebiten.SetWindowTitle("Tank Arena")
	ebiten.SetWindowSize(cfg.World.Width, cfg.World.Height)
	if err := ebiten.RunGame(game.New(cfg, zl)); err != nil {
		log.Fatal(err)
	}
}
