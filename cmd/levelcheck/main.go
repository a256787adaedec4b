package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/milk9111/junkfoodwar/entity"
	"github.com/milk9111/junkfoodwar/level"
	"github.com/milk9111/junkfoodwar/levels"
	"github.com/milk9111/junkfoodwar/physics"
	"github.com/milk9111/junkfoodwar/prefabs"
)

func main() {
	ticks := flag.Int("ticks", 0, "simulate this many idle frames after loading each level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: levelcheck [-ticks n] [level ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	names := flag.Args()
	if len(names) == 0 {
		names = levels.Names()
	}

	defs, err := prefabs.LoadDefinitions()
	if err != nil {
		log.Fatal(err)
	}

	failed := false
	for _, name := range names {
		if err := check(os.Stdout, name, defs, *ticks); err != nil {
			fmt.Fprintf(os.Stdout, "%s: FAIL: %v\n", name, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// check loads one level into a real physics space and reports what was built.
func check(w io.Writer, name string, defs map[string]*entity.Definition, ticks int) error {
	desc, err := levels.Load(name)
	if err != nil {
		return err
	}

	lvl, err := level.New(desc, defs, physics.NewSpace(), nil, level.DefaultConfig())
	if err != nil {
		return err
	}
	defer lvl.Close()

	fmt.Fprintf(w, "%s: %d entities, %d heroes, %d villains, width %v\n",
		desc.Name, len(lvl.Entities()), len(lvl.Heroes()), len(lvl.Villains()), desc.Width())

	skipped := lvl.Skipped()
	for _, s := range skipped {
		fmt.Fprintf(w, "  skipped: %v\n", s)
	}

	if ticks > 0 {
		now := time.Unix(0, 0)
		for i := 0; i < ticks && !lvl.Ended(); i++ {
			now = now.Add(time.Second / 60)
			if err := lvl.Tick(now); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "  after %d frames: mode %s, %d villains, score %.0f\n",
			ticks, lvl.Mode(), len(lvl.Villains()), lvl.Score())
	}

	if len(skipped) > 0 {
		return fmt.Errorf("%d entities skipped", len(skipped))
	}
	return nil
}
