// Command levelview draws generated levels in the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/intruderalert/internal/config"
	"chosenoffset.com/intruderalert/internal/world/content"
	"chosenoffset.com/intruderalert/internal/world/grid"
	"chosenoffset.com/intruderalert/internal/world/level"
	"chosenoffset.com/intruderalert/pkg/logger"
)

var (
	floorStyle     = tcell.StyleDefault.Foreground(tcell.Color(240))
	wallStyle      = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	crateStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	explosiveStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	enemyStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	playerStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	statusStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

type viewer struct {
	screen tcell.Screen
	cfg    *config.Config
	seed   int64
	num    int
	lvl    *level.Level
}

func (v *viewer) generate() {
	v.lvl = level.Generate(level.FromConfig(v.cfg, v.num), rand.New(rand.NewSource(v.seed+int64(v.num))))
}

func (v *viewer) draw() {
	v.screen.Clear()
	g := v.lvl.Grid
	g.Each(func(t *grid.Tile) {
		switch t.Type {
		case grid.Floor:
			v.screen.SetContent(t.Col, t.Row, '.', nil, floorStyle)
		case grid.Wall:
			v.screen.SetContent(t.Col, t.Row, '#', nil, wallStyle)
		}
	})
	for _, c := range v.lvl.Crates {
		r, style := 'c', crateStyle
		if c.Explosive {
			r, style = 'X', explosiveStyle
		}
		v.screen.SetContent(c.Tile.Col, c.Tile.Row, r, nil, style)
	}
	for _, e := range v.lvl.Enemies {
		r := 'E'
		if e.Loadout == content.LoadoutBouncer {
			r = 'B'
		}
		v.screen.SetContent(e.Tile.Col, e.Tile.Row, r, nil, enemyStyle)
	}
	start := v.lvl.SpawnRoom.CenterTile()
	v.screen.SetContent(start.Col, start.Row, '@', nil, playerStyle)

	s := v.lvl.Stats()
	v.print(0, g.Rows+1, fmt.Sprintf("seed %d  level %d  rooms %d  walls %d  crates %d (%d explosive)  enemies %d",
		v.seed, v.num, s.Rooms, s.Walls, s.Crates, s.Explosive, s.Enemies))
	v.print(0, g.Rows+2, "r: new seed  n/p: next/previous level  q: quit")
	v.screen.Show()
}

func (v *viewer) print(x, y int, text string) {
	for i, r := range text {
		v.screen.SetContent(x+i, y, r, nil, statusStyle)
	}
}

// run handles keys until the user quits.
func (v *viewer) run() {
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch ev.Rune() {
			case 'q':
				return
			case 'r':
				v.seed = rand.Int63()
			case 'n':
				v.num++
			case 'p':
				if v.num > 0 {
					v.num--
				}
			default:
				continue
			}
			v.generate()
			v.draw()
		}
	}
}

func main() {
	configPath := flag.String("config", "intruderalert.yaml", "path to the YAML config (defaults are used if missing)")
	seed := flag.Int64("seed", 1, "level seed; level n uses seed+n")
	flag.Parse()

	// The terminal belongs to the view.
	logger.Log.SetOutput(io.Discard)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := &viewer{screen: screen, cfg: cfg, seed: *seed}
	v.generate()
	v.draw()
	v.run()
}
