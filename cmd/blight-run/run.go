package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"blight/internal/export"
	"blight/internal/scenario"
	"blight/internal/sims/spread"
)

func newRunCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run one scenario and write its outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			world, err := sc.World()
			if err != nil {
				return err
			}
			if seed != 0 {
				world.Reset(seed)
			}

			var stats *export.StatsWriter
			if sc.Output.Stats != "" {
				f, err := os.Create(sc.Output.Stats)
				if err != nil {
					return fmt.Errorf("creating stats %s: %w", sc.Output.Stats, err)
				}
				defer f.Close()
				stats, err = export.NewStatsWriter(f)
				if err != nil {
					return err
				}
			}

			var recorder *export.Recorder
			size := world.Size()
			frameScale := sc.Output.FrameScale
			if frameScale < 1 {
				frameScale = 1
			}
			if sc.Output.Video != "" {
				recorder, err = export.NewRecorder(sc.Output.Video,
					size.W*frameScale, size.H*frameScale, sc.Output.FPS)
				if err != nil {
					return err
				}
				defer recorder.Close()
			}

			history := make([]spread.Totals, 0, sc.Steps+1)
			record := func(t spread.Totals) error {
				history = append(history, t)
				if stats != nil {
					if err := stats.WriteStep(t); err != nil {
						return err
					}
				}
				if recorder != nil {
					label := fmt.Sprintf("step %d  year %d", t.Step, world.Year())
					frame := export.Frame(world.Cells(), world.Palette(), size.W, size.H, frameScale, label)
					if err := recorder.AddFrame(frame); err != nil {
						return err
					}
				}
				return nil
			}

			if err := record(world.Totals()); err != nil {
				return err
			}
			for step := 0; step < sc.Steps; step++ {
				world.Step()
				if err := record(world.Totals()); err != nil {
					return err
				}
			}

			if stats != nil {
				if err := stats.Flush(); err != nil {
					return err
				}
			}
			if sc.Output.Chart != "" {
				steps, series := export.CompartmentSeries(history)
				if err := export.RenderChartFile(sc.Output.Chart, steps, series); err != nil {
					return err
				}
			}

			final := history[len(history)-1]
			log.Printf("%s: %d steps, infected=%d susceptible=%d dead=%d escaped=%d",
				sc.Name, sc.Steps, final.Infected, final.Susceptible, final.Dead, final.Outside)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the scenario seed")
	return cmd
}
