package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/junkfoodwar/assets"
	"github.com/milk9111/junkfoodwar/common"
	"github.com/milk9111/junkfoodwar/entity"
	"github.com/milk9111/junkfoodwar/input"
	"github.com/milk9111/junkfoodwar/level"
	"github.com/milk9111/junkfoodwar/levels"
	"github.com/milk9111/junkfoodwar/physics"
	"github.com/milk9111/junkfoodwar/prefabs"
	"github.com/milk9111/junkfoodwar/render"
)

type action uint8

const (
	actionNone action = iota
	actionReplay
	actionNext
)

type Game struct {
	names []string
	index int
	debug bool

	defs  map[string]*entity.Definition
	mouse *input.Mouse
	space *physics.Space
	level *level.Level
	scene *render.Scene

	ui      *ebitenui.UI
	uiFrame int
	pending action

	watcher *prefabs.Watcher
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	defs, err := prefabs.LoadDefinitions()
	if err != nil {
		return nil, err
	}

	names := levels.Names()
	index := 0
	if levelName != "" {
		want := levels.NameFromPath(levelName)
		if want == "" {
			want = levelName
		}
		index = slices.Index(names, want)
		if index < 0 {
			names = []string{want}
			index = 0
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("game: no levels")
	}

	g := &Game{
		names: names,
		index: index,
		debug: debug,
		defs:  defs,
		mouse: input.NewMouse(),
	}
	if watch {
		g.watcher = newWatcher()
	}
	if err := g.load(index); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func newWatcher() *prefabs.Watcher {
	var dirs []string
	for _, dir := range []string{levels.Dir, prefabs.Dir, assets.Dir} {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		log.Printf("watch: no %s/, %s/ or %s/ directory to watch", levels.Dir, prefabs.Dir, assets.Dir)
		return nil
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("watch: %v", err)
		return nil
	}
	return w
}

// load tears down the running level and starts names[index].
func (g *Game) load(index int) error {
	g.closeLevel()

	name := g.names[index]
	desc, err := levels.Load(name)
	if err != nil {
		return err
	}
	scene, err := render.NewScene(desc)
	if err != nil {
		return fmt.Errorf("game: %s: %w", name, err)
	}

	space := physics.NewSpace(physics.WithDebug(g.debug))
	cfg := level.DefaultConfig()
	cfg.ViewportWidth = common.BaseWidth
	cfg.Debug = g.debug
	lvl, err := level.New(desc, g.defs, space, g.mouse, cfg)
	if err != nil {
		_ = space.Close()
		return err
	}

	g.index = index
	g.space = space
	g.level = lvl
	g.scene = scene
	g.ui = nil
	g.pending = actionNone
	log.Printf("game: started %s (%d heroes, %d villains)", name, len(lvl.Heroes()), len(lvl.Villains()))
	return nil
}

func (g *Game) closeLevel() {
	if g.level == nil {
		return
	}
	if err := g.level.Close(); err != nil {
		log.Printf("game: %v", err)
	}
}

func (g *Game) lastLevel() bool {
	return g.index == len(g.names)-1
}

func (g *Game) Update() error {
	g.pollWatcher()

	if g.ui != nil {
		g.uiFrame++
		g.ui.Update()
		return g.runPending()
	}

	pollMouse(g.mouse)
	if err := g.level.Tick(time.Now()); err != nil && !errors.Is(err, level.ErrClosed) {
		return err
	}

	if g.level.Ended() {
		g.closeLevel()
		g.ui = NewOutcomeUI(g, g.level.Outcome(), g.level.Score())
		g.uiFrame = 0
	}
	return nil
}

func (g *Game) runPending() error {
	next := g.index
	switch g.pending {
	case actionNone:
		return nil
	case actionNext:
		if !g.lastLevel() {
			next++
		}
	}
	g.pending = actionNone
	return g.load(next)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeLevel:
		if change.Name != g.names[g.index] {
			return
		}
	case prefabs.ChangeDefinitions:
		defs, err := prefabs.LoadDefinitions()
		if err != nil {
			log.Printf("watch: %s: %v", change.Path, err)
			return
		}
		g.defs = defs
	case prefabs.ChangeImage:
		render.ForgetImages()
	default:
		return
	}
	if err := g.load(g.index); err != nil {
		log.Printf("watch: reload %s: %v", g.names[g.index], err)
		return
	}
	log.Printf("watch: reloaded %s after %s change to %s", g.names[g.index], change.Kind, change.Path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen, g.level)
	if g.debug {
		render.DrawPhysicsDebug(screen, g.space, g.level)
	}
	if g.ui != nil {
		drawDim(screen, g.uiFrame)
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the level and stops watching files.
func (g *Game) Close() {
	g.closeLevel()
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}
