// Command routeweave builds a road network graph from an OSM PBF
// extract, persists it, and serves shortest-path queries over it.
package main

import (
	"flag"
	"log"

	"github.com/jfranc38/routeweave/graph"
	"github.com/jfranc38/routeweave/restapi"
	"github.com/jfranc38/routeweave/srtm"
)

func main() {
	var (
		pbfPath    = flag.String("pbf", "", "OSM PBF extract to build the graph from")
		graphPath  = flag.String("graph", "graph.bin", "path to load/save the serialized graph")
		srtmDir    = flag.String("srtm-dir", "srtm-tiles", "directory used to cache downloaded SRTM tiles")
		skipSRTM   = flag.Bool("no-elevation", false, "skip SRTM enrichment when building the graph")
		addr       = flag.String("addr", "localhost:8000", "address to serve shortest-path requests on")
		buildOnly  = flag.Bool("build-only", false, "build and save the graph, then exit without serving")
	)
	flag.Parse()

	g := loadOrBuild(*pbfPath, *graphPath, *srtmDir, *skipSRTM)
	if *buildOnly {
		return
	}

	server := restapi.New(g)
	if err := server.ListenAndServe(*addr); err != nil {
		log.Fatalf("routeweave: serve: %v", err)
	}
}

func loadOrBuild(pbfPath, graphPath, srtmDir string, skipSRTM bool) *graph.Graph {
	if pbfPath == "" {
		g, err := graph.Load(graphPath)
		if err != nil {
			log.Fatalf("routeweave: load graph: %v", err)
		}
		return g
	}

	var elevation graph.ElevationProvider
	if !skipSRTM {
		elevation = srtm.NewCache(srtmDir)
	}

	g, err := graph.BuildFromPBF(pbfPath, elevation)
	if err != nil {
		log.Fatalf("routeweave: build graph: %v", err)
	}
	if err := g.Save(graphPath); err != nil {
		log.Fatalf("routeweave: save graph: %v", err)
	}
	return g
}
