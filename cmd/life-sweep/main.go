package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"life2d/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

type sweepOptions struct {
	base    life.Config
	runs    int
	steps   int
	workers int
}

type runResult struct {
	seed       int64
	initial    int
	population int
	peak       int
	settledAt  int // 0 when the board never stopped changing
}

func (r runResult) String() string {
	settled := "-"
	if r.settledAt > 0 {
		settled = fmt.Sprint(r.settledAt)
	}
	return fmt.Sprintf("seed=%d initial=%d final=%d peak=%d settled=%s", r.seed, r.initial, r.population, r.peak, settled)
}

func main() {
	base := life.DefaultConfig()
	flag.IntVar(&base.Width, "w", 64, "grid width in cells")
	flag.IntVar(&base.Height, "h", 64, "grid height in cells")
	flag.Float64Var(&base.Density, "density", base.Density, "initial percentage of live cells")
	flag.Int64Var(&base.Seed, "seed", 1, "seed of the first run; run i uses seed+i")
	steps := flag.Int("steps", 500, "generations to simulate per run")
	runs := flag.Int("runs", 32, "number of seeded runs")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	flag.Parse()

	opts := sweepOptions{base: base, runs: *runs, steps: *steps, workers: *workers}
	fmt.Printf("Sweeping %d runs of %dx%d at %.1f%% (%d workers, %d steps)\n",
		opts.runs, base.Width, base.Height, base.Density, opts.workers, opts.steps)

	start := time.Now()
	results, err := sweep(context.Background(), opts)
	if err != nil {
		log.Fatalf("life-sweep: %v", err)
	}
	for _, res := range results {
		fmt.Println(res)
	}

	byPop := append([]runResult(nil), results...)
	sort.Slice(byPop, func(i, j int) bool { return byPop[i].population > byPop[j].population })
	if len(byPop) > 0 {
		fmt.Printf("\nLargest survivor (elapsed %s): %s\n", time.Since(start).Round(time.Millisecond), byPop[0])
	}
}

func sweep(ctx context.Context, opts sweepOptions) ([]runResult, error) {
	if opts.runs < 0 {
		return nil, fmt.Errorf("runs %d must not be negative", opts.runs)
	}
	results := make([]runResult, opts.runs)
	g, ctx := errgroup.WithContext(ctx)
	if opts.workers > 0 {
		g.SetLimit(opts.workers)
	}
	for i := 0; i < opts.runs; i++ {
		cfg := opts.base
		cfg.Seed = opts.base.Seed + int64(i)
		g.Go(func() error {
			res, err := runScenario(ctx, cfg, opts.steps)
			if err != nil {
				return fmt.Errorf("seed %d: %w", cfg.Seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, cfg life.Config, steps int) (runResult, error) {
	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		return runResult{}, err
	}
	res := runResult{seed: cfg.Seed, initial: sim.Population()}
	res.peak = res.initial
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return runResult{}, err
		}
		sim.Step()
		if pop := sim.Population(); pop > res.peak {
			res.peak = pop
		}
		if !sim.Changed() {
			res.settledAt = sim.Generation()
			break
		}
	}
	res.population = sim.Population()
	return res, nil
}
