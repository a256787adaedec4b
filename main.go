package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/junkfoodwar/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (physics overlay, fatal handle errors)")
	watch := flag.Bool("watch", false, "reload levels/ and prefabs/ yaml from disk when they change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(windowSize())
	ebiten.SetWindowTitle("Junk Food War")

	game, err := NewGame(*levelName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// windowSize picks the largest whole multiple of the base resolution that
// fits the monitor.
func windowSize() (int, int) {
	w, h := ebiten.Monitor().Size()
	scale := 1
	for (scale+1)*common.BaseWidth <= w*9/10 && (scale+1)*common.BaseHeight <= h*9/10 {
		scale++
	}
	return common.BaseWidth * scale, common.BaseHeight * scale
}
