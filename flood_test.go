package hexgeo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxedIn returns a wall map sealing off every planar exit from p except
// the west edge.
func boxedIn(p Point) WallMap {
	walls := NewWallMap()
	walls.Put(NewPrism(p, 1, 1, 1, 0))
	walls.Put(NewPrism(Travel(p, Northwest, 1), 0, 1, 1, 0))
	walls.Put(NewPrism(Travel(p, Northeast, 1), 0, 0, 1, 0))
	return walls
}

func TestFloodBase(t *testing.T) {
	start := NewPoint2D(1, 2)
	walls := boxedIn(start)

	set := FloodBase(start, 2, walls)

	// Only the west edge is open: the flood escapes through (0,2) and
	// spreads one more hop from there. (0,3) is walled off from the start
	// but open from (0,2), so the second hop picks it up from behind.
	want := []Point{
		start,
		NewPoint2D(0, 2),
		NewPoint2D(0, 1),
		NewPoint2D(-1, 2),
		NewPoint2D(-1, 3),
		NewPoint2D(0, 3),
	}

	require.Equal(t, len(want), set.Size())
	for _, p := range want {
		assert.True(t, set.Has(p), "flood must reach %v", p)
	}
}

func TestFloodBaseAlwaysContainsStart(t *testing.T) {
	start := NewPoint2D(1, 2)

	walls := NewWallMap()
	walls.Put(NewPrism(start, 1, 1, 1, 1))
	walls.Put(NewPrism(Travel(start, Northwest, 1), 0, 1, 1, 0))
	walls.Put(NewPrism(Travel(start, Northeast, 1), 0, 0, 1, 0))
	walls.Put(NewPrism(Travel(start, West, 1), 1, 0, 0, 0))

	set := FloodBase(start, 3, walls)

	assert.Equal(t, 1, set.Size(), "fully sealed start floods nowhere")
	assert.True(t, set.Has(start))
}

func TestFloodBaseWithoutWalls(t *testing.T) {
	start := NewPoint2D(0, 0)

	// With no walls a flood covers exactly the planar range.
	flooded := FloodBase(start, 2, NewWallMap())
	ranged := RangeBase(start, 2)

	assert.Equal(t, ranged.Size(), flooded.Size())
	ranged.Each(func(p Point) {
		assert.True(t, flooded.Has(p))
	})
}

func TestFloodBaseZeroStrengthWallDoesNotBlock(t *testing.T) {
	start := NewPoint2D(1, 2)

	walls := NewWallMap()
	walls.Put(NewPrism(start, 0, 0, 0, 0))

	assert.Equal(t, RangeBase(start, 1).Size(), FloodBase(start, 1, walls).Size())
}

func TestFlood(t *testing.T) {
	start := NewPoint(0, 0, 0)

	// Seal the vertical shaft above the start.
	walls := NewWallMap()
	walls.Put(NewPrism(NewPoint(0, 0, 1), 0, 0, 0, 1))

	set := Flood(start, 1, walls)

	require.Equal(t, 8, set.Size())
	assert.True(t, set.Has(NewPoint(0, 0, -1)))
	assert.False(t, set.Has(NewPoint(0, 0, 1)), "cell above is walled off")
}

func TestFloodRoutesAroundWall(t *testing.T) {
	start := NewPoint2D(0, 0)
	east := Travel(start, East, 1)

	// A single east wall blocks the direct edge but not the cell.
	walls := NewWallMap()
	walls.Put(NewPrism(start, 1, 0, 0, 0))

	hop1 := FloodBase(start, 1, walls)
	assert.Equal(t, 6, hop1.Size())
	assert.False(t, hop1.Has(east), "east edge is walled")

	hop2 := FloodBase(start, 2, walls)
	assert.True(t, hop2.Has(east), "east cell is reachable around the wall")
	assert.False(t, hop2.Has(NewPoint2D(2, 0)), "the detour costs a hop")

	hop3 := FloodBase(start, 3, walls)
	assert.True(t, hop3.Has(NewPoint2D(2, 0)))
}

func TestFloodZeroRadius(t *testing.T) {
	start := NewPoint(1, 2, 5)

	set := Flood(start, 0, NewWallMap())

	assert.Equal(t, 1, set.Size())
	assert.True(t, set.Has(start))
}
