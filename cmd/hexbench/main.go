// hexbench exercises the kernel from many goroutines sharing one read-only
// wall map. The kernel takes no locks; as long as the map is not mutated,
// concurrent queries are safe, and this tool is the standing proof.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/hexgeo"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	workers := flag.Int("workers", 8, "concurrent query goroutines")
	iters := flag.Int("iters", 1000, "query rounds per worker")
	radius := flag.Int("radius", 6, "arena radius")
	flag.Parse()

	if err := run(context.Background(), *workers, *iters, *radius); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, workers, iters, radius int) error {
	if workers < 1 || iters < 1 || radius < 1 {
		return fmt.Errorf("workers, iters and radius must be positive")
	}

	origin := hexgeo.NewPoint(0, 0, 0)
	walls := buildArena(origin, radius)
	slog.Info("arena built", "radius", radius, "prisms", len(walls))

	targets := collectTargets(origin, radius)

	var points atomic.Int64
	start := time.Now()

	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		worker := w
		g.Go(func() error {
			total := 0
			for i := 0; i < iters; i++ {
				target := targets[(worker+i)%len(targets)]

				total += hexgeo.Ray(origin, target, walls).Size()
				total += hexgeo.Flood(origin, radius/2, walls).Size()
				total += hexgeo.Range(target, 2).Size()
			}
			points.Add(int64(total))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("running workers: %w", err)
	}

	elapsed := time.Since(start)
	queries := workers * iters * 3
	slog.Info("done",
		"workers", workers,
		"queries", queries,
		"points", points.Load(),
		"elapsed", elapsed,
		"per_query", elapsed/time.Duration(queries))

	return nil
}

// buildArena walls off a hexagonal ring halfway out from the origin,
// leaving gaps so rays and floods do real work both sides of it.
func buildArena(origin hexgeo.Point, radius int) hexgeo.WallMap {
	walls := hexgeo.NewWallMap()

	i := 0
	hexgeo.RingBase(origin, radius/2).Each(func(p hexgeo.Point) {
		i++
		if i%5 == 0 {
			return // gap
		}
		walls.Put(hexgeo.NewPrism(p, 1, 1, 1, 1))
	})

	return walls
}

// collectTargets picks the outer shell as ray destinations.
func collectTargets(origin hexgeo.Point, radius int) []hexgeo.Point {
	var targets []hexgeo.Point
	hexgeo.Ring(origin, radius).Each(func(p hexgeo.Point) {
		targets = append(targets, p)
	})
	return targets
}
