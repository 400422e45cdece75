// Package mobile is the entry point bound by ebitenmobile for Android and
// iOS apps.
package mobile

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"spaceshooter/audio"
	"spaceshooter/game"
	"spaceshooter/host/ebitenhost"
)

func init() {
	config := game.DefaultConfig()
	config.Render.Style = game.StyleSprite

	logger, err := game.NewLogger(os.Stderr, config.Log.Level)
	if err != nil {
		logger = log.Default()
	}

	style, err := game.NewStyle(config.Render.Style)
	if err != nil {
		logger.Warn("sprites unavailable, drawing vectors", "err", err)
	}

	sounds := audio.New(config.Audio, logger)
	if err := sounds.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}

	g := game.NewGame(config, game.Options{
		Logger: logger,
		Sounds: sounds,
		Style:  style,
	})

	host, err := ebitenhost.New(g, config, logger)
	if err != nil {
		logger.Fatal("create host", "err", err)
	}
	mobile.SetGame(host)
}

// Dummy is exported so ebitenmobile bind has a symbol to generate.
func Dummy() {}
