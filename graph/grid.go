package graph

import (
	"errors"

	"github.com/jfranc38/routeweave/osm"
)

// ErrPointNotOnMap is returned when a requested coordinate falls
// outside every cell of the graph's spatial index.
var ErrPointNotOnMap = errors.New("graph: point not on map")

// ErrNoTransportMatch is returned when a point was located on the map
// but no edge reachable from nearby nodes admits the requested
// transport mode.
var ErrNoTransportMatch = errors.New("graph: no node matching transport mode found nearby")

// neighbor tracks the closest relevant node found so far during a
// ring search.
type neighbor struct {
	index int
	dist  uint32
	found bool
}

// NearestNeighbor locates the node index closest to coords whose
// outgoing edges admit params.Transport, widening the search ring by
// whole-degree steps from the coordinate's own cell until either a
// wider ring fails to improve on the current best, or the ring radius
// reaches one tenth of the number of cells in the index.
//
// The ring offsets are whole degrees, not the 0.1-degree cell
// granularity itself — this mirrors the upstream search exactly and
// is spatially imprecise (a radius-1 ring skips the eight 0.1-degree
// cells immediately surrounding the origin cell) but is kept as-is
// rather than silently "fixed", since the search still converges on a
// usable node in practice and changing it would change routing
// results for reasons unrelated to this port.
func (g *Graph) NearestNeighbor(coords osm.Coordinate, params osm.Params) (int, error) {
	originCell, ok := g.Cells[coords.Cell()]
	if !ok {
		return 0, ErrPointNotOnMap
	}

	best := g.closest([][]int{originCell}, coords, params)

	maxRadius := int(float64(len(g.Cells)) * 0.1)
	for radius := 1; radius < maxRadius; radius++ {
		adjacent := g.adjacentCells(coords, radius)
		candidate := g.closest(adjacent, coords, params)

		if !best.found || (candidate.found && candidate.dist < best.dist) {
			best = candidate
		} else {
			break
		}
	}

	if !best.found {
		return 0, ErrNoTransportMatch
	}
	return best.index, nil
}

// adjacentCells collects the cells forming the square ring at the
// given radius around coords, skipping cells already covered by a
// smaller radius.
func (g *Graph) adjacentCells(coords osm.Coordinate, radius int) [][]int {
	cells := make([][]int, 0, radius*8)

	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if abs(i) != radius && abs(j) != radius {
				continue
			}
			key := coords.CellAt(i, j)
			if cell, ok := g.Cells[key]; ok {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// closest scans every node index in cells and returns the one with
// smallest distance to coords among those with at least one edge
// relevant to params.
func (g *Graph) closest(cells [][]int, coords osm.Coordinate, params osm.Params) neighbor {
	best := neighbor{}

	for _, cell := range cells {
		for _, index := range cell {
			relevant := false
			for _, e := range g.EdgesFrom(index) {
				if e.IsRelevant(params) {
					relevant = true
					break
				}
			}
			if !relevant {
				continue
			}

			dist := uint32(g.Nodes[index].Coordinate.Distance(coords))
			if !best.found || dist < best.dist {
				best = neighbor{index: index, dist: dist, found: true}
			}
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
