package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"spaceshooter/audio"
	"spaceshooter/game"
	"spaceshooter/host/ebitenhost"
)

func main() {
	configPath := flag.String("config", "", "TOML config file (or set "+game.ConfigEnvVar+")")
	flag.Parse()

	path := game.ConfigPath(*configPath)
	config, err := game.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spaceshooter: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := game.OpenLog(config.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spaceshooter: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	style, err := game.NewStyle(config.Render.Style)
	if err != nil {
		logger.Warn("sprites unavailable, drawing vectors", "err", err)
	}

	sounds := audio.New(config.Audio, logger)
	if config.Audio.Enabled {
		if err := sounds.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		}
	}
	defer sounds.Close()

	g := game.NewGame(config, game.Options{
		Logger: logger,
		Sounds: sounds,
		Style:  style,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if path != "" {
		err := game.WatchConfig(ctx, path, logger, func(c game.Config) {
			g.Post(game.Retune(c.Tuning))
		})
		if err != nil {
			logger.Warn("config reload disabled", "err", err)
		}
	}

	host, err := ebitenhost.New(g, config, logger)
	if err != nil {
		logger.Fatal("create host", "err", err)
	}

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.Loop.FPS)

	logger.Info("starting", "style", config.Render.Style, "config", path)
	if err := ebiten.RunGame(host); err != nil {
		logger.Error("game loop", "err", err)
		os.Exit(1)
	}
}
