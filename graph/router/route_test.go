package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jfranc38/routeweave/graph"
)

func TestCalcCurvatureStraightLineScoresZero(t *testing.T) {
	route := Route{Nodes: []graph.Node{
		{Coordinate: coord(0, 0)},
		{Coordinate: coord(0, 0.001)},
		{Coordinate: coord(0, 0.002)},
	}}
	route.calcCurvature()

	assert.Len(t, route.Curvature.Radii, 3)
	assert.Equal(t, float32(0), route.Curvature.Score)
}

func TestCalcCurvatureHairpinScoresSix(t *testing.T) {
	route := Route{Nodes: []graph.Node{
		{Coordinate: coord(0, 0)},
		{Coordinate: coord(0, 0.001)},
		{Coordinate: coord(0, 0.0005)}, // doubles back toward the first node
	}}
	route.calcCurvature()

	angle := route.Curvature.Radii[1]
	if assert.NotNil(t, angle.Degrees) {
		assert.Less(t, *angle.Degrees, float32(160))
	}
}

func TestCalcCurvatureRadiiCountMatchesNodeCount(t *testing.T) {
	route := Route{Nodes: []graph.Node{
		{Coordinate: coord(0, 0)},
		{Coordinate: coord(0, 0.001)},
		{Coordinate: coord(0, 0.002)},
		{Coordinate: coord(0, 0.003)},
	}}
	route.calcCurvature()

	assert.Len(t, route.Curvature.Radii, len(route.Nodes))
}

func TestRouteMergeDropsDuplicateJoinNode(t *testing.T) {
	a := Route{
		Nodes:    []graph.Node{{ID: 1}, {ID: 2}},
		Edges:    []graph.Edge{{SourceIndex: 0, TargetIndex: 1}},
		Distance: 100,
		Time:     10,
	}
	b := Route{
		Nodes:    []graph.Node{{ID: 2}, {ID: 3}},
		Edges:    []graph.Edge{{SourceIndex: 0, TargetIndex: 1}},
		Distance: 50,
		Time:     5,
	}
	a.Merge(b)

	assert.Equal(t, []int64{1, 2, 3}, nodeIDs(a.Nodes))
	assert.Equal(t, uint32(150), a.Distance)
	assert.Equal(t, uint32(15), a.Time)
	assert.Len(t, a.Edges, 2)
}

func nodeIDs(nodes []graph.Node) []int64 {
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

func TestGeoJSONProducesOneLineStringFeature(t *testing.T) {
	route := Route{Nodes: []graph.Node{
		{Coordinate: coord(48.0, 11.0)},
		{Coordinate: coord(48.1, 11.1)},
	}, Distance: 500}

	fc := route.GeoJSON()
	assert.Len(t, fc.Features, 1)
	assert.Equal(t, "LineString", string(fc.Features[0].Geometry.Type))
}
