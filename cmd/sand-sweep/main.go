package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"falling-sand/internal/sims/sand"

	"gonum.org/v1/gonum/stat"
)

func main() {
	scene := flag.String("scene", sand.SceneRain, "scene to run ("+strings.Join(sand.SceneNames(), ", ")+")")
	seeds := flag.Int("seeds", 64, "number of seeds to run, starting at -first")
	first := flag.Int64("first", 1, "first seed")
	maxTicks := flag.Int("max-ticks", 2000, "tick limit per run")
	width := flag.Int("w", 60, "grid width")
	height := flag.Int("h", 40, "grid height")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if !slices.Contains(sand.SceneNames(), *scene) {
		log.Fatalf("unknown scene %q", *scene)
	}
	if *workers <= 0 {
		*workers = 1
	}

	base := sand.Config{Width: *width, Height: *height, Scene: *scene}
	fmt.Printf("Running scene %q on %dx%d for %d seeds (%d workers, max %d ticks)\n",
		*scene, *width, *height, *seeds, *workers, *maxTicks)

	jobs := make(chan int64)
	results := make(chan sand.SettleResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				cfg := base
				cfg.Seed = seed
				results <- sand.RunUntilSettled(cfg, *maxTicks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sand.SettleResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	elapsed := time.Since(start)

	var ticks, moves []float64
	settled := 0
	for _, res := range all {
		state := "running"
		if res.Settled {
			state = "settled"
			settled++
		}
		fmt.Printf("seed=%d ticks=%d moves=%d %s sand=%d water=%d lava=%d\n",
			res.Seed, res.Ticks, res.Moves, state,
			res.Census[sand.KindSand], res.Census[sand.KindWater], res.Census[sand.KindLava])
		ticks = append(ticks, float64(res.Ticks))
		moves = append(moves, float64(res.Moves))
	}
	if len(all) == 0 {
		return
	}

	fmt.Printf("\n%d/%d runs settled (elapsed %s)\n", settled, len(all), elapsed.Round(time.Millisecond))
	fmt.Printf("ticks: mean=%.1f stddev=%.1f\n", stat.Mean(ticks, nil), stat.StdDev(ticks, nil))
	fmt.Printf("moves: mean=%.1f stddev=%.1f\n", stat.Mean(moves, nil), stat.StdDev(moves, nil))
}
