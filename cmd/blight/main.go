//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"blight/internal/app"
	"blight/internal/core"
	"blight/internal/scenario"
	_ "blight/internal/sims/spread"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario YAML to run (defaults built in when empty)")
	seed := flag.Int64("seed", 0, "seed override; 0 keeps the scenario seed")
	scale := flag.Int("scale", 3, "pixels per cell")
	tps := flag.Int("tps", 10, "simulation steps per second")
	flag.Parse()

	var sim core.Sim
	if *scenarioPath != "" {
		sc, err := scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatal(err)
		}
		world, err := sc.World()
		if err != nil {
			log.Fatal(err)
		}
		sim = world
	} else {
		factory, ok := core.Sims()["spread"]
		if !ok {
			log.Fatal("spread sim not registered")
		}
		sim = factory(nil)
	}
	sim.Reset(*seed)

	game := app.New(sim, *scale, *seed)
	size := sim.Size()

	ebiten.SetWindowTitle("blight: " + sim.Name())
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(size.W*(*scale), size.H*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
