// Package restapi exposes the routing engine over HTTP: a single
// endpoint that accepts an ordered list of waypoints and returns the
// merged Route across all of them.
package restapi

import (
	"errors"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/jfranc38/routeweave/graph"
	"github.com/jfranc38/routeweave/graph/router"
	"github.com/jfranc38/routeweave/osm"
)

const shortestPathPath = "/shortest-path"

// Server answers shortest-path requests against a fixed, immutable
// Graph.
type Server struct {
	graph *graph.Graph
}

// New builds a Server bound to g.
func New(g *graph.Graph) *Server {
	return &Server{graph: g}
}

// ListenAndServe starts the HTTP server on addr. It blocks until the
// server stops or errors.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("listening on %s", addr)
	server := &fasthttp.Server{
		Handler: s.handle,
	}
	return server.ListenAndServe(addr)
}

func (s *Server) handle(ctx *fasthttp.RequestCtx) {
	if string(ctx.Path()) != shortestPathPath || !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		return
	}

	start := time.Now()
	var req request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err)
		return
	}
	if len(req.Stops) < 2 {
		writeError(ctx, fasthttp.StatusBadRequest, errors.New("restapi: at least 2 stops are required"))
		return
	}

	params, err := req.params()
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err)
		return
	}

	route, err := shortestPath(s.graph, params, req.Stops)
	if err != nil {
		log.Printf("no path found, calculation took %s", time.Since(start))
		writeError(ctx, statusFor(err), err)
		return
	}
	log.Printf("calculated path in %s", time.Since(start))

	body, err := json.Marshal(route)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

// shortestPath runs one leg per consecutive pair of stops and merges
// them into a single Route, abandoning on the first failing leg.
func shortestPath(g *graph.Graph, params osm.Params, stops []osm.Coordinate) (*router.Route, error) {
	var route *router.Route

	for i := 0; i < len(stops)-1; i++ {
		r := router.New(g, params)
		leg, err := r.ShortestPath(stops[i], stops[i+1])
		if err != nil {
			return nil, err
		}

		if route == nil {
			route = &leg
		} else {
			route.Merge(leg)
		}
	}
	return route, nil
}

// statusFor maps a core routing error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, graph.ErrPointNotOnMap):
		return fasthttp.StatusBadRequest
	case errors.Is(err, graph.ErrNoTransportMatch):
		return fasthttp.StatusBadRequest
	case errors.Is(err, router.ErrStartIsGoal):
		return fasthttp.StatusBadRequest
	case errors.Is(err, router.ErrNoPath):
		return fasthttp.StatusNotFound
	default:
		return fasthttp.StatusInternalServerError
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(ctx *fasthttp.RequestCtx, status int, err error) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(errorBody{Error: err.Error()})
	ctx.SetBody(body)
}
