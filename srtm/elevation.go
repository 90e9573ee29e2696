package srtm

import (
	"math"

	"github.com/jfranc38/routeweave/osm"
)

// neighborOffsets are the nine grid points (itself plus its
// orthogonal and diagonal neighbors) sampled for inverse-distance
// weighted interpolation.
var neighborOffsets = [9][2]float64{
	{0, 0},
	{1, 0}, {-1, 0},
	{0, 1}, {0, -1},
	{1, 1}, {-1, -1},
	{1, -1}, {-1, 1},
}

// Elevation returns the elevation in meters at coords, interpolating
// between the nearest raster samples, or false if every sample near
// coords is void (missing data).
func (c *Cache) Elevation(coords osm.Coordinate) (float32, bool) {
	t := c.get(coords)

	row := math.Floor((float64(t.lat) + 1.0 - coords.Lat()) / t.resolution)
	column := math.Floor((coords.Lon() - float64(t.lon)) / t.resolution)
	center := t.coordinates(row, column)

	if sample, ok := t.elevation(row, column); ok && center.Equal(coords) {
		return float32(sample), true
	}

	var weights, elevation float64
	any := false
	for _, off := range neighborOffsets {
		sample, ok := t.elevation(row+off[0], column+off[1])
		if !ok {
			continue
		}
		neighbor := osm.CoordinateFromDegrees(
			center.Lat()+off[0]*t.resolution,
			center.Lon()+off[1]*t.resolution,
		)
		distance := coords.Distance(neighbor)
		if distance == 0 {
			return float32(sample), true
		}
		weights += 1.0 / distance
		elevation += float64(sample) / distance
		any = true
	}
	if !any {
		return 0, false
	}
	return float32(elevation / weights), true
}
