package main

import (
	"errors"
	"flag"
	"time"

	"chosenoffset.com/intruderalert/internal/config"
	"chosenoffset.com/intruderalert/internal/game"
	ebitenrender "chosenoffset.com/intruderalert/internal/render/ebiten"
	"chosenoffset.com/intruderalert/pkg/logger"
)

func main() {
	configPath := flag.String("config", "intruderalert.yaml", "path to the YAML config (defaults are used if missing)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "level seed; level n uses seed+n")
	levels := flag.Int("levels", 0, "quit after clearing this many levels (0 = endless)")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	screenWidth := 1280
	screenHeight := 800

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	gameManager := game.NewManager(cfg, *seed, renderer, inputMgr, screenWidth, screenHeight)
	gameManager.MaxLevels = *levels

	// Set up the window
	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("Intruder Alert")
	engine.SetWindowResizable(true)

	log.WithField("seed", *seed).Info("Starting game")
	if err := engine.RunGame(gameManager); err != nil && !errors.Is(err, game.ErrQuit) {
		log.WithError(err).Fatal("Game exited")
	}
}
