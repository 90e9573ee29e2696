package graph

import (
	"encoding/gob"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/jfranc38/routeweave/osm"
)

// Cells is the spatial index: a coarsened-coordinate cell key mapped
// to the node indices that fall into it.
type Cells map[osm.CellKey][]int

// Graph is the compact, immutable road network: CSR-ordered nodes and
// edges plus the spatial cell index used for nearest-neighbor
// snapping. It is built once (from an OSM PBF stream, see pbf.go) and
// never mutated afterward.
type Graph struct {
	Nodes   []Node
	Edges   []Edge
	Offsets []int
	Cells   Cells
}

// New builds a Graph from nodes and edges, sorting edges (in place,
// stably) into CSR order and deriving the offsets and spatial cell
// index.
func New(nodes []Node, edges []Edge) *Graph {
	sort.SliceStable(edges, func(i, j int) bool { return less(edges[i], edges[j]) })

	offsets := make([]int, len(nodes)+1)
	for _, e := range edges {
		offsets[e.SourceIndex+1]++
	}
	for i := 1; i < len(offsets); i++ {
		offsets[i] += offsets[i-1]
	}

	g := &Graph{
		Nodes:   nodes,
		Edges:   edges,
		Offsets: offsets,
	}
	g.Cells = buildCells(nodes)
	return g
}

func buildCells(nodes []Node) Cells {
	cells := make(Cells, len(nodes))
	for i, n := range nodes {
		key := n.Coordinate.Cell()
		cells[key] = append(cells[key], i)
	}
	return cells
}

// Node returns the node at index.
func (g *Graph) Node(index int) Node {
	return g.Nodes[index]
}

// EdgesFrom returns the adjacency (outgoing edges) of the node at index.
func (g *Graph) EdgesFrom(index int) []Edge {
	return g.Edges[g.Offsets[index]:g.Offsets[index+1]]
}

// Save gob-encodes the graph to filename.
func (g *Graph) Save(filename string) error {
	log.Printf("writing graph to %s...", filename)
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("graph: create %s: %w", filename, err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(g); err != nil {
		return fmt.Errorf("graph: encode: %w", err)
	}
	log.Printf("wrote graph to %s", filename)
	return nil
}

// Load gob-decodes a graph previously written by Save.
func Load(filename string) (*Graph, error) {
	log.Printf("reading graph from %s...", filename)
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("graph: open %s: %w", filename, err)
	}
	defer file.Close()

	var g Graph
	if err := gob.NewDecoder(file).Decode(&g); err != nil {
		return nil, fmt.Errorf("graph: decode: %w", err)
	}
	log.Printf("read graph from %s", filename)
	return &g, nil
}
