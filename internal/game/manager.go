package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/intruderalert/internal/config"
	"chosenoffset.com/intruderalert/internal/render"
	"chosenoffset.com/intruderalert/internal/world/level"
	"chosenoffset.com/intruderalert/pkg/logger"
)

// ErrQuit is returned from Update when the player asks to leave.
var ErrQuit = errors.New("quit")

// Manager handles level progression around the running Game.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *config.Config
	Seed         int64
	LevelNum     int
	MaxLevels    int // 0 means endless
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager

	log *logrus.Entry
}

// NewManager creates a manager and loads the first level.
func NewManager(cfg *config.Config, seed int64, r render.Renderer, input render.InputManager, width, height int) *Manager {
	m := &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Config:       cfg,
		Seed:         seed,
		Renderer:     r,
		InputMgr:     input,
		log:          logger.For("manager"),
	}
	m.LoadLevel(0)
	return m
}

// LoadLevel generates level num and starts a fresh arena on it. Level num
// always comes from seed+num, so a restart replays the same layout.
func (m *Manager) LoadLevel(num int) {
	rng := rand.New(rand.NewSource(m.Seed + int64(num)))
	lvl := level.Generate(level.FromConfig(m.Config, num), rng)

	if m.Game != nil {
		m.Game.Dispose()
	}
	m.LevelNum = num
	m.Game = NewGame(m.Renderer, m.InputMgr, NewArena(m.Config, lvl, rng), m.ScreenWidth, m.ScreenHeight)

	m.log.WithFields(lvl.Stats().Fields()).WithField("seed", m.Seed).Info("Level loaded")
	m.Game.ShowMessage(fmt.Sprintf("Level %d", num+1))
}

// Update updates the game state.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return ErrQuit
	}

	arena := m.Game.Arena
	switch {
	case arena.GameOver && m.InputMgr.IsKeyJustPressed(render.KeyR):
		m.LoadLevel(m.LevelNum)
		return nil
	case arena.Completed && !arena.GameOver &&
		(m.InputMgr.IsKeyJustPressed(render.KeyN) || m.InputMgr.IsKeyJustPressed(render.KeySpace)):
		if m.MaxLevels > 0 && m.LevelNum+1 >= m.MaxLevels {
			m.log.WithField("levels", m.MaxLevels).Info("All levels cleared")
			return ErrQuit
		}
		m.LoadLevel(m.LevelNum + 1)
		return nil
	}
	return m.Game.Update()
}

// Draw draws the current level.
func (m *Manager) Draw(screen render.Image) {
	m.Game.Draw(screen)
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.Game.ScreenWidth = outsideWidth
		m.Game.ScreenHeight = outsideHeight
		m.Game.UpdateCamera()
	}
	return outsideWidth, outsideHeight
}
