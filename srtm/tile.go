// Package srtm provides elevation lookups backed by NASA SRTM .hgt
// raster tiles, downloading and caching tiles on demand.
package srtm

import (
	"encoding/binary"
	"math"

	"github.com/jfranc38/routeweave/osm"
)

// void is the sentinel sample value SRTM tiles use for missing data
// (ocean edges, sensor gaps).
const void = -32768

// tile is one decoded .hgt raster: a square grid of big-endian int16
// elevation samples covering one whole degree of latitude/longitude,
// anchored at its south-west corner.
type tile struct {
	lat, lon   int32
	data       []byte
	squareSide int
	resolution float64
}

// newTile decodes the raw bytes of a .hgt file into a tile anchored
// at the coordinate's whole-degree south-west corner.
func newTile(coords osm.Coordinate, data []byte) tile {
	squareSide := int(math.Sqrt(float64(len(data)) / 2.0))
	return tile{
		lat:        int32(math.Floor(coords.Lat())),
		lon:        int32(math.Floor(coords.Lon())),
		data:       data,
		squareSide: squareSide,
		resolution: 1.0 / float64(squareSide-1),
	}
}

// elevation returns the raw sample at the given fractional row/column,
// or false if the position falls outside the tile or hits the void
// sentinel.
func (t tile) elevation(row, column float64) (int16, bool) {
	if row < 0 || column < 0 || int(row) >= t.squareSide || int(column) >= t.squareSide {
		return 0, false
	}
	index := int(row)*t.squareSide + int(column)
	start := index * 2
	if start < 0 || start+1 >= len(t.data) {
		return 0, false
	}

	sample := int16(binary.BigEndian.Uint16(t.data[start : start+2]))
	if sample == void {
		return 0, false
	}
	return sample, true
}

// coordinates returns the exact coordinate sampled at (row, column):
// row increases southward from the tile's north edge, column
// increases eastward from its west edge.
func (t tile) coordinates(row, column float64) osm.Coordinate {
	lat := float64(t.lat) + 1.0 - row*t.resolution
	lon := float64(t.lon) + column*t.resolution
	return osm.CoordinateFromDegrees(lat, lon)
}
