// hexquery runs the queries of a scenario file against the hexgeo kernel
// and prints the results.
//
// Usage: hexquery [scenario.yaml]
// The scenario path may also come from the HEXGEO_SCENARIO environment
// variable; the flag argument wins.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/udisondev/hexgeo"
	"github.com/udisondev/hexgeo/internal/scenario"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	path := os.Getenv("HEXGEO_SCENARIO")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		return fmt.Errorf("no scenario: pass a path or set HEXGEO_SCENARIO")
	}

	s, err := scenario.Load(path)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	slog.Info("scenario loaded", "name", s.Name, "prisms", len(s.Prisms), "queries", len(s.Queries))

	walls := s.WallMap()
	for i, q := range s.Queries {
		if err := runQuery(i, q, walls); err != nil {
			return fmt.Errorf("query %d (%s): %w", i, q.Op, err)
		}
	}

	return nil
}

func runQuery(index int, q scenario.Query, walls hexgeo.WallMap) error {
	from := q.From.Point()
	to := q.To.Point()

	switch q.Op {
	case scenario.OpDistance:
		fmt.Printf("[%d] distance %v -> %v = %d (planar %d, height %d)\n",
			index, from, to,
			hexgeo.Distance(from, to),
			hexgeo.PlanarDistance(from, to),
			hexgeo.HeightDistance(from, to))

	case scenario.OpLine:
		if q.Range != nil {
			printSet(index, q.Op, hexgeo.LineThrough(from, to, *q.Range))
		} else {
			printSet(index, q.Op, hexgeo.Line(from, to))
		}

	case scenario.OpRay:
		if q.Range != nil {
			printSet(index, q.Op, hexgeo.RayThrough(from, to, *q.Range, walls))
		} else {
			printSet(index, q.Op, hexgeo.Ray(from, to, walls))
		}

	case scenario.OpRange:
		printSet(index, q.Op, hexgeo.Range(from, q.Radius))

	case scenario.OpRangeBase:
		printSet(index, q.Op, hexgeo.RangeBase(from, q.Radius))

	case scenario.OpRing:
		printSet(index, q.Op, hexgeo.Ring(from, q.Radius))

	case scenario.OpRingBase:
		printSet(index, q.Op, hexgeo.RingBase(from, q.Radius))

	case scenario.OpFlood:
		printSet(index, q.Op, hexgeo.Flood(from, q.Radius, walls))

	case scenario.OpFloodBase:
		printSet(index, q.Op, hexgeo.FloodBase(from, q.Radius, walls))

	case scenario.OpRotate:
		fmt.Printf("[%d] rotate %v around %v x%d = %v\n",
			index, from, q.Center.Point(), q.Times,
			hexgeo.Rotate(from, q.Center.Point(), q.Times))

	default:
		// Load validation rejects unknown ops before we get here.
		return fmt.Errorf("unknown op %q", q.Op)
	}

	return nil
}

func printSet(index int, op string, set mapset.Set[hexgeo.Point]) {
	points := make([]hexgeo.Point, 0, set.Size())
	set.Each(func(p hexgeo.Point) {
		points = append(points, p)
	})

	sort.Slice(points, func(i, j int) bool {
		a, b := points[i], points[j]
		if a.T != b.T {
			return a.T < b.T
		}
		if a.R != b.R {
			return a.R < b.R
		}
		return a.Q < b.Q
	})

	fmt.Printf("[%d] %s: %d points\n", index, op, len(points))
	for _, p := range points {
		fmt.Printf("  %v\n", p)
	}
}
