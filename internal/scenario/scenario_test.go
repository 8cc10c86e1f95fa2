package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/hexgeo"
)

const sample = `
name: test arena
prisms:
  - at: {q: 1, r: 2, t: 5}
    east: 1
    down: 2
queries:
  - op: line
    from: {q: 1, r: 2, t: 5}
    to: {q: 3, r: 4, t: 10}
  - op: flood
    from: {q: 0, r: 0, t: 0}
    radius: 2
  - op: rotate
    from: {q: 1, r: 2, t: 5}
    center: {q: 1, r: 1, t: 5}
    times: 2
`

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	s, err := Load(write(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "test arena", s.Name)
	require.Len(t, s.Prisms, 1)
	assert.Equal(t, hexgeo.NewPoint(1, 2, 5), s.Prisms[0].At.Point())
	assert.Equal(t, 1, s.Prisms[0].East)
	assert.Equal(t, 2, s.Prisms[0].Down)
	assert.Zero(t, s.Prisms[0].Southeast, "omitted walls default to zero")

	require.Len(t, s.Queries, 3)
	assert.Equal(t, OpLine, s.Queries[0].Op)
	assert.Equal(t, 2, s.Queries[1].Radius)
	assert.Equal(t, 2, s.Queries[2].Times)
}

func TestLoadUnknownOp(t *testing.T) {
	_, err := Load(write(t, "queries:\n  - op: teleport\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown op")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWallMap(t *testing.T) {
	s, err := Load(write(t, sample))
	require.NoError(t, err)

	walls := s.WallMap()
	at := hexgeo.NewPoint(1, 2, 5)

	assert.True(t, walls.HasWallBetween(at, hexgeo.Travel(at, hexgeo.East, 1)))
	assert.True(t, walls.HasWallBetween(at, hexgeo.Travel(at, hexgeo.Down, 1)))
	assert.False(t, walls.HasWallBetween(at, hexgeo.Travel(at, hexgeo.West, 1)))
}
