// Package router computes shortest paths over a graph.Graph with A*,
// reconstructs the resulting Route, and merges multi-waypoint legs.
package router

import (
	"errors"

	"github.com/jfranc38/routeweave/graph"
	"github.com/jfranc38/routeweave/osm"
)

// ErrStartIsGoal is returned when the start and goal coordinates snap
// to the same graph node.
var ErrStartIsGoal = errors.New("router: start is goal")

// ErrNoPath is returned when the frontier empties before reaching the
// goal — the goal is not reachable from the start under params.
var ErrNoPath = errors.New("router: no path found")

// Router runs repeated shortest-path queries against a fixed graph
// and transport/routing configuration, reusing its scratch state
// (cost and predecessor arrays) across calls; the frontier is created
// fresh for each call.
type Router struct {
	graph  *graph.Graph
	params osm.Params

	cost []uint32
	prev []*graph.Edge
}

const infiniteCost = ^uint32(0)

// New builds a Router bound to g and params.
func New(g *graph.Graph, params osm.Params) *Router {
	return &Router{
		graph:  g,
		params: params,
		cost:   make([]uint32, len(g.Nodes)),
		prev:   make([]*graph.Edge, len(g.Nodes)),
	}
}

// ShortestPath finds the cheapest route from start to goal under the
// Router's params, snapping both endpoints to the nearest matching
// graph node first.
func (r *Router) ShortestPath(start, goal osm.Coordinate) (Route, error) {
	startIndex, err := r.graph.NearestNeighbor(start, r.params)
	if err != nil {
		return Route{}, err
	}
	goalIndex, err := r.graph.NearestNeighbor(goal, r.params)
	if err != nil {
		return Route{}, err
	}
	if r.graph.Node(startIndex).ID == r.graph.Node(goalIndex).ID {
		return Route{}, ErrStartIsGoal
	}

	r.reset()
	r.cost[startIndex] = 0

	queue := newFrontier(len(r.graph.Nodes))
	queue.push(node{index: startIndex, cost: 0, heuristic: 0})

	goalID := r.graph.Node(goalIndex).ID
	for !queue.isEmpty() {
		current := queue.pop()
		if r.graph.Node(current.index).ID == goalID {
			return build(r.graph, r.prev, r.params.Transport, startIndex, current.index), nil
		}
		if current.cost > r.cost[current.index] {
			continue
		}

		for _, edge := range r.graph.EdgesFrom(current.index) {
			if !edge.IsRelevant(r.params) {
				continue
			}

			cost := current.cost + edge.Cost(r.params)
			if cost < r.cost[edge.TargetIndex] {
				e := edge
				r.prev[edge.TargetIndex] = &e
				r.cost[edge.TargetIndex] = cost

				heuristic := r.heuristic(edge.TargetIndex, goalIndex)
				queue.push(node{index: edge.TargetIndex, cost: cost, heuristic: heuristic})
			}
		}
	}
	return Route{}, ErrNoPath
}

// heuristic estimates the remaining cost from node `from` to node
// `to`: zero when driving for time (A* degenerates to Dijkstra, since
// travel time isn't bounded below by straight-line distance), the
// straight-line distance otherwise (a lower bound on the remaining
// distance, which is the edge cost for every other transport/routing
// combination).
func (r *Router) heuristic(from, to int) uint32 {
	if r.params.Transport == osm.Car && r.params.Routing == osm.Time {
		return 0
	}
	return uint32(r.graph.Node(from).Coordinate.Distance(r.graph.Node(to).Coordinate))
}

func (r *Router) reset() {
	for i := range r.cost {
		r.cost[i] = infiniteCost
		r.prev[i] = nil
	}
}
