// Package scenario loads grid query scenarios from YAML files for the
// command line tools. A scenario describes a wall layout and a list of
// kernel queries to run against it.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/hexgeo"
)

// Known query operations.
const (
	OpDistance  = "distance"
	OpLine      = "line"
	OpRay       = "ray"
	OpRange     = "range"
	OpRangeBase = "range_base"
	OpRing      = "ring"
	OpRingBase  = "ring_base"
	OpFlood     = "flood"
	OpFloodBase = "flood_base"
	OpRotate    = "rotate"
)

var knownOps = map[string]bool{
	OpDistance:  true,
	OpLine:      true,
	OpRay:       true,
	OpRange:     true,
	OpRangeBase: true,
	OpRing:      true,
	OpRingBase:  true,
	OpFlood:     true,
	OpFloodBase: true,
	OpRotate:    true,
}

// Scenario is a wall layout plus the queries to run against it.
type Scenario struct {
	Name    string  `yaml:"name"`
	Prisms  []Prism `yaml:"prisms"`
	Queries []Query `yaml:"queries"`
}

// Point mirrors a kernel point in YAML.
type Point struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
	T int `yaml:"t"`
}

// Point converts the YAML form to a kernel point.
func (p Point) Point() hexgeo.Point {
	return hexgeo.NewPoint(p.Q, p.R, p.T)
}

// Prism is a walled cell: the four stored wall strengths of the kernel
// prism, zero when omitted.
type Prism struct {
	At        Point `yaml:"at"`
	East      int   `yaml:"east"`
	Southeast int   `yaml:"southeast"`
	Southwest int   `yaml:"southwest"`
	Down      int   `yaml:"down"`
}

// Query is a single kernel invocation. From is the query anchor; the other
// fields apply per operation (To for lines/rays and distance, Radius for
// regions, Range for an explicit step budget, Center and Times for rotate).
type Query struct {
	Op     string `yaml:"op"`
	From   Point  `yaml:"from"`
	To     Point  `yaml:"to"`
	Radius int    `yaml:"radius"`
	Range  *int   `yaml:"range,omitempty"`
	Center Point  `yaml:"center"`
	Times  int    `yaml:"times"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validating scenario: %w", err)
	}

	return &s, nil
}

// Validate checks that every query names a known operation.
func (s *Scenario) Validate() error {
	for i, q := range s.Queries {
		if !knownOps[q.Op] {
			return fmt.Errorf("query %d: unknown op %q", i, q.Op)
		}
	}
	return nil
}

// WallMap builds the kernel occlusion map from the scenario's prisms.
func (s *Scenario) WallMap() hexgeo.WallMap {
	walls := hexgeo.NewWallMap()
	for _, p := range s.Prisms {
		walls.Put(hexgeo.NewPrism(p.At.Point(), p.East, p.Southeast, p.Southwest, p.Down))
	}
	return walls
}
