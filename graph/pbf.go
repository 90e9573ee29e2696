package graph

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime"
	"sort"

	"github.com/qedus/osmpbf"

	"github.com/jfranc38/routeweave/osm"
)

// ElevationProvider supplies an optional elevation sample for a
// coordinate. It is satisfied by *srtm.Cache; kept as an interface
// here so graph construction never depends on how elevation is
// sourced.
type ElevationProvider interface {
	Elevation(osm.Coordinate) (float32, bool)
}

// BuildFromPBF constructs a Graph from an OSM PBF extract. It makes
// two passes over the file (ways, then nodes) plus a final in-memory
// pass that fills in distances and grades once every node's
// coordinate is known — the node pass can only resolve coordinates
// for nodes actually referenced by a relevant way, so it must follow
// the way pass rather than run alongside it.
//
// elevation may be nil, in which case no grade is computed.
func BuildFromPBF(path string, elevation ElevationProvider) (*Graph, error) {
	log.Printf("parsing ways from %s...", path)
	edges, nodeIndices, numNodes, err := parseWays(path)
	if err != nil {
		return nil, err
	}
	log.Printf("parsed %d edges over %d nodes", len(edges), numNodes)

	log.Printf("parsing nodes from %s...", path)
	nodes, err := parseNodes(path, nodeIndices, numNodes, elevation)
	if err != nil {
		return nil, err
	}
	log.Printf("parsed %d nodes", len(nodes))

	for i := range edges {
		source := nodes[edges[i].SourceIndex]
		target := nodes[edges[i].TargetIndex]
		dist := uint32(source.Coordinate.Distance(target.Coordinate))
		edges[i].Distance = dist
		edges[i].Meta.Grade = grade(source, target, dist)
	}

	sort.Slice(edges, func(i, j int) bool { return less(edges[i], edges[j]) })

	return New(nodes, edges), nil
}

// parseWays makes the first pass over the file: for every way that
// carries a recognized highway tag it assigns sequential internal
// indices to the OSM node ids it touches and emits one Edge per
// consecutive node pair (plus a reverse edge unless the way is
// tagged oneway=yes).
func parseWays(path string) ([]Edge, map[int64]int, int, error) {
	decoder, file, err := openPBF(path)
	if err != nil {
		return nil, nil, 0, err
	}
	defer file.Close()

	nodeIndices := make(map[int64]int)
	numNodes := 0
	insert := func(id int64) int {
		if idx, ok := nodeIndices[id]; ok {
			return idx
		}
		idx := numNodes
		nodeIndices[id] = idx
		numNodes++
		return idx
	}

	var edges []Edge
	for {
		obj, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, 0, fmt.Errorf("graph: decode pbf: %w", err)
		}

		way, ok := obj.(*osmpbf.Way)
		if !ok {
			continue
		}
		meta, ok := metaFromWay(way)
		if !ok || len(way.NodeIDs) < 2 {
			continue
		}
		oneway := way.Tags[osm.TagOneway] == osm.TagOnewayYes

		insert(way.NodeIDs[0])
		for i := 1; i < len(way.NodeIDs); i++ {
			sourceIndex := nodeIndices[way.NodeIDs[i-1]]
			targetIndex := insert(way.NodeIDs[i])

			edges = append(edges, Edge{SourceIndex: sourceIndex, TargetIndex: targetIndex, Meta: meta})
			if !oneway {
				edges = append(edges, Edge{SourceIndex: targetIndex, TargetIndex: sourceIndex, Meta: meta})
			}
		}
	}
	return edges, nodeIndices, numNodes, nil
}

// parseNodes makes the second pass, resolving the coordinate (and,
// if elevation is non-nil, the elevation) of every node id collected
// by parseWays.
func parseNodes(path string, nodeIndices map[int64]int, numNodes int, elevation ElevationProvider) ([]Node, error) {
	decoder, file, err := openPBF(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	nodes := make([]Node, numNodes)
	remaining := len(nodeIndices)
	for remaining > 0 {
		obj, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graph: decode pbf: %w", err)
		}

		n, ok := obj.(*osmpbf.Node)
		if !ok {
			continue
		}
		index, ok := nodeIndices[n.ID]
		if !ok {
			continue
		}
		remaining--

		coord := osm.CoordinateFromDegrees(n.Lat, n.Lon)
		node := Node{ID: n.ID, Coordinate: coord}
		if elevation != nil {
			if e, ok := elevation.Elevation(coord); ok {
				node.Elevation = &e
			}
		}
		nodes[index] = node
	}
	return nodes, nil
}

// metaFromWay builds edge Meta from a way's tags, reporting false if
// the way carries no recognized highway tag.
func metaFromWay(way *osmpbf.Way) (Meta, bool) {
	highway, ok := osm.HighwayFromTag(way.Tags[osm.TagHighway])
	if !ok {
		return Meta{}, false
	}

	speed, ok := osm.KmhFromMaxSpeedTag(way.Tags[osm.TagMaxSpeed])
	if !ok {
		speed = highway.DefaultSpeed()
	}

	var surface *osm.Surface
	if s, ok := osm.SurfaceFromTag(way.Tags[osm.TagSurface]); ok {
		surface = &s
	}

	return Meta{Highway: highway, Surface: surface, Speed: speed}, true
}

// grade returns the absolute grade percent between two nodes (uphill
// and downhill give the same value), or nil if either lacks an
// elevation sample.
func grade(source, target Node, distance uint32) *uint8 {
	if source.Elevation == nil || target.Elevation == nil || distance == 0 {
		return nil
	}
	rise := *source.Elevation - *target.Elevation
	if rise < 0 {
		rise = -rise
	}
	pct := uint8(math.Round(float64(rise) / float64(distance) * 100))
	return &pct
}

func openPBF(path string) (*osmpbf.Decoder, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("graph: open %s: %w", path, err)
	}

	d := osmpbf.NewDecoder(f)
	d.SetBufferSize(osmpbf.MaxBlobSize)
	if err := d.Start(runtime.GOMAXPROCS(-1)); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("graph: start decoder: %w", err)
	}
	return d, f, nil
}
