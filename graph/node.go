// Package graph holds the compact (CSR) road network: nodes, edges,
// the spatial grid used for nearest-neighbor snapping, PBF ingestion,
// and gob-based persistence.
package graph

import "github.com/jfranc38/routeweave/osm"

// Node is a vertex of the road network: a stable OSM id, its
// Coordinate, and an optional elevation sampled from SRTM.
type Node struct {
	ID         int64
	Coordinate osm.Coordinate
	Elevation  *float32
}
