package restapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/jfranc38/routeweave/graph"
	"github.com/jfranc38/routeweave/osm"
)

func twoNodeGraph() *graph.Graph {
	nodes := []graph.Node{
		{ID: 1, Coordinate: osm.CoordinateFromDegrees(48.000, 11.000)},
		{ID: 2, Coordinate: osm.CoordinateFromDegrees(48.001, 11.000)},
	}
	meta := graph.Meta{Highway: osm.Residential, Speed: osm.NewKmh(30)}
	edges := []graph.Edge{
		{SourceIndex: 0, TargetIndex: 1, Distance: 100, Meta: meta},
		{SourceIndex: 1, TargetIndex: 0, Distance: 100, Meta: meta},
	}
	return graph.New(nodes, edges)
}

func newCtx(method, path string, body []byte) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	ctx.Request.SetBody(body)
	return ctx
}

func TestHandleReturnsRouteForValidRequest(t *testing.T) {
	s := New(twoNodeGraph())
	body := []byte(`{"stops":[{"lat":48.000,"lon":11.000},{"lat":48.001,"lon":11.000}],"transport":"car","routing":"distance","avoid_unpaved":false}`)
	ctx := newCtx(fasthttp.MethodPost, shortestPathPath, body)

	s.handle(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"distance"`)
}

func TestHandleRejectsUnknownPath(t *testing.T) {
	s := New(twoNodeGraph())
	ctx := newCtx(fasthttp.MethodPost, "/nope", nil)

	s.handle(ctx)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestHandleRejectsSingleStop(t *testing.T) {
	s := New(twoNodeGraph())
	body := []byte(`{"stops":[{"lat":48.000,"lon":11.000}],"transport":"car","routing":"distance"}`)
	ctx := newCtx(fasthttp.MethodPost, shortestPathPath, body)

	s.handle(ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestHandleMapsNoPathToNotFound(t *testing.T) {
	nodes := []graph.Node{
		{ID: 1, Coordinate: osm.CoordinateFromDegrees(48.000, 11.000)},
		{ID: 2, Coordinate: osm.CoordinateFromDegrees(48.001, 11.000)},
		{ID: 3, Coordinate: osm.CoordinateFromDegrees(10.000, 20.000)},
		{ID: 4, Coordinate: osm.CoordinateFromDegrees(10.001, 20.000)},
	}
	meta := graph.Meta{Highway: osm.Residential, Speed: osm.NewKmh(30)}
	edges := []graph.Edge{
		{SourceIndex: 0, TargetIndex: 1, Distance: 100, Meta: meta},
		{SourceIndex: 1, TargetIndex: 0, Distance: 100, Meta: meta},
		{SourceIndex: 2, TargetIndex: 3, Distance: 100, Meta: meta},
		{SourceIndex: 3, TargetIndex: 2, Distance: 100, Meta: meta},
	}
	s := New(graph.New(nodes, edges))
	body := []byte(`{"stops":[{"lat":48.000,"lon":11.000},{"lat":10.000,"lon":20.000}],"transport":"car","routing":"distance"}`)
	ctx := newCtx(fasthttp.MethodPost, shortestPathPath, body)

	s.handle(ctx)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestShortestPathMergesMultipleLegs(t *testing.T) {
	g := twoNodeGraph()
	route, err := shortestPath(g, osm.NewParams(osm.Car, osm.Distance, false), []osm.Coordinate{
		osm.CoordinateFromDegrees(48.000, 11.000),
		osm.CoordinateFromDegrees(48.001, 11.000),
		osm.CoordinateFromDegrees(48.000, 11.000),
	})
	require.NoError(t, err)
	assert.Len(t, route.Nodes, 3)
}
