package main

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"blight/internal/scenario"
)

type sweepResult struct {
	seed     int64
	infected int
	dead     int
	outside  int
}

func newSweepCmd() *cobra.Command {
	var (
		runs     int
		workers  int
		seedBase int64
	)
	cmd := &cobra.Command{
		Use:   "sweep <scenario.yaml>",
		Short: "Run a seed ensemble of one scenario",
		Long: `sweep replays the same scenario under consecutive seeds, one
independent simulation instance per run, and reports the spread of
outcomes. Workers never share a random stream, so the ensemble is
reproducible for a fixed base seed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if runs <= 0 {
				return fmt.Errorf("runs must be positive, got %d", runs)
			}
			if workers <= 0 {
				workers = 1
			}

			fmt.Printf("Sweeping %d seeds (%d workers, %d steps)\n", runs, workers, sc.Steps)

			jobs := make(chan int64)
			results := make(chan sweepResult)
			var wg sync.WaitGroup

			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for seed := range jobs {
						res, err := runOnce(sc, seed)
						if err != nil {
							// Scenario validated at load; per-run failures
							// should not happen, but report them anyway.
							fmt.Printf("seed %d: %v\n", seed, err)
							continue
						}
						results <- res
					}
				}()
			}

			go func() {
				for i := 0; i < runs; i++ {
					jobs <- seedBase + int64(i)
				}
				close(jobs)
				wg.Wait()
				close(results)
			}()

			var collected []sweepResult
			for res := range results {
				collected = append(collected, res)
			}
			sort.Slice(collected, func(a, b int) bool { return collected[a].seed < collected[b].seed })

			sumInfected, minInfected, maxInfected := 0, -1, 0
			sumOutside := 0
			for _, res := range collected {
				sumInfected += res.infected
				sumOutside += res.outside
				if minInfected < 0 || res.infected < minInfected {
					minInfected = res.infected
				}
				if res.infected > maxInfected {
					maxInfected = res.infected
				}
				fmt.Printf("seed=%d infected=%d dead=%d escaped=%d\n",
					res.seed, res.infected, res.dead, res.outside)
			}
			if len(collected) > 0 {
				fmt.Printf("infected mean=%.1f min=%d max=%d, escaped mean=%.1f\n",
					float64(sumInfected)/float64(len(collected)), minInfected, maxInfected,
					float64(sumOutside)/float64(len(collected)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 32, "number of seeds to sweep")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	cmd.Flags().Int64Var(&seedBase, "seed-base", 1, "first seed of the ensemble")
	return cmd
}

func runOnce(sc *scenario.Scenario, seed int64) (sweepResult, error) {
	world, err := sc.World()
	if err != nil {
		return sweepResult{}, err
	}
	world.Reset(seed)
	for step := 0; step < sc.Steps; step++ {
		world.Step()
	}
	t := world.Totals()
	return sweepResult{seed: seed, infected: t.Infected, dead: t.Dead, outside: t.Outside}, nil
}
