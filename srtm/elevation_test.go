package srtm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfranc38/routeweave/osm"
)

// cacheWithTile builds a Cache pre-seeded with a single in-memory
// tile, bypassing disk/network lookups entirely.
func cacheWithTile(anchor osm.Coordinate, data []byte) *Cache {
	name := filename(anchor)
	return &Cache{
		dir:   "",
		index: map[string]string{},
		tiles: map[string]tile{name: newTile(anchor, data)},
	}
}

func TestElevationExactSample(t *testing.T) {
	anchor := osm.CoordinateFromDegrees(48.0, 11.0)
	data := rasterFixture(2, 500, -1, -1)
	c := cacheWithTile(anchor, data)

	e, ok := c.Elevation(osm.CoordinateFromDegrees(48.0, 11.0))
	require.True(t, ok)
	assert.InDelta(t, 500, e, 1.0)
}

func TestElevationInterpolatesBetweenSamples(t *testing.T) {
	anchor := osm.CoordinateFromDegrees(48.0, 11.0)
	data := rasterFixture(2, 100, -1, -1)
	c := cacheWithTile(anchor, data)

	e, ok := c.Elevation(osm.CoordinateFromDegrees(48.5, 11.5))
	require.True(t, ok)
	assert.InDelta(t, 100, e, 1.0)
}

func TestElevationAllVoidReturnsFalse(t *testing.T) {
	anchor := osm.CoordinateFromDegrees(48.0, 11.0)
	data := make([]byte, 2*2*2)
	for i := 0; i < len(data); i += 2 {
		binary.BigEndian.PutUint16(data[i:i+2], uint16(void))
	}
	c := cacheWithTile(anchor, data)

	_, ok := c.Elevation(osm.CoordinateFromDegrees(48.5, 11.5))
	assert.False(t, ok)
}
