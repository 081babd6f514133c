package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wfunc/hangman/config"
	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/logger"
	"github.com/wfunc/hangman/render"
	"github.com/wfunc/hangman/words"
)

// Screen Constants
const (
	ScreenWidth  = 480
	ScreenHeight = 320
	WindowTitle  = "Hangman"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Init("info")
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Init(cfg.Log.Level)
	defer logger.Sync()

	catalog, err := cfg.WordCatalog()
	if err != nil {
		logger.Log.Fatalf("Invalid word catalog: %v", err)
	}

	board := render.NewBoard()
	controller := game.NewController(catalog, words.NewRandomSource(), board)
	controller.StartRound()

	ebiten.SetWindowSize(ScreenWidth*2, ScreenHeight*2)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(controller, board)); err != nil {
		logger.Log.Fatalf("Game loop stopped: %v", err)
	}
}
