package router

import (
	"math"

	"github.com/paulmach/go.geojson"

	"github.com/jfranc38/routeweave/graph"
	"github.com/jfranc38/routeweave/osm"
)

// Route is a computed path through the network: the ordered nodes and
// edges that make it up, its aggregate time/distance, how many
// intersections it crosses, and its curvature profile.
type Route struct {
	Nodes         []graph.Node `json:"nodes"`
	Edges         []graph.Edge `json:"edges"`
	Time          uint32       `json:"time"`
	Distance      uint32       `json:"distance"`
	Intersections int          `json:"intersections"`
	Curvature     Curvature    `json:"curvature"`
}

// Curvature summarizes how winding a route is: one Radius per node
// (the end nodes repeat the first and last interior angles), scored
// and summed.
type Curvature struct {
	Radii []Radius `json:"radii"`
	Score float32  `json:"score"`
}

// Radius is the interior angle, in degrees, at one node of a route
// (180 for a straight continuation) — nil when the law-of-cosines
// result is NaN, infinite or exactly zero, as for coincident points
// or a triple that folds straight back on itself.
type Radius struct {
	Degrees *float32
}

// gamma computes the interior angle at c2 of the triangle (c1, c2,
// c3) via the law of cosines.
func gamma(c1, c2, c3 osm.Coordinate) Radius {
	a := float32(c2.Distance(c3))
	b := float32(c1.Distance(c2))
	c := float32(c1.Distance(c3))

	cos := (a*a + b*b - c*c) / (2 * a * b)
	radians := float32(math.Acos(float64(cos)))
	if math.IsNaN(float64(radians)) || math.IsInf(float64(radians), 0) || radians == 0 {
		return Radius{}
	}
	degrees := radians * (180.0 / math.Pi)
	return Radius{Degrees: &degrees}
}

// score maps an interior angle to a curvature point value: sharper
// turns (smaller angles) score higher. A nil angle (degenerate triple) scores zero.
func (r Radius) score() float32 {
	if r.Degrees == nil {
		return 0
	}
	switch {
	case *r.Degrees < 160:
		return 6
	case *r.Degrees < 170:
		return 2
	case *r.Degrees < 175:
		return 1
	default:
		return 0
	}
}

// calcCurvature fills in route.Curvature from route.Nodes. It mirrors
// the upstream routine exactly, including its double-counting of the
// first and last interior triples (one synthetic entry pushed before
// the main loop, one after) — kept rather than "fixed" since changing
// the point total would change curvature scores for reasons unrelated
// to this port.
func (route *Route) calcCurvature() {
	if len(route.Nodes) < 3 {
		return
	}
	coord := func(i int) osm.Coordinate { return route.Nodes[i].Coordinate }

	n := len(route.Nodes)
	route.Curvature.Radii = append(route.Curvature.Radii, gamma(coord(0), coord(1), coord(2)))
	for i := 1; i < n-1; i++ {
		route.Curvature.Radii = append(route.Curvature.Radii, gamma(coord(i-1), coord(i), coord(i+1)))
	}
	route.Curvature.Radii = append(route.Curvature.Radii, gamma(coord(n-3), coord(n-2), coord(n-1)))

	var score float32
	for _, r := range route.Curvature.Radii {
		score += r.score()
	}
	route.Curvature.Score = score
}

// Merge appends other onto route as the next leg of a multi-waypoint
// journey. other's first node is dropped since it is already route's
// last node (the shared waypoint).
func (route *Route) Merge(other Route) {
	if len(other.Nodes) > 0 {
		other.Nodes = other.Nodes[1:]
	}
	route.Nodes = append(route.Nodes, other.Nodes...)
	route.Edges = append(route.Edges, other.Edges...)
	route.Time += other.Time
	route.Distance += other.Distance
	route.Intersections += other.Intersections
	route.Curvature.Radii = append(route.Curvature.Radii, other.Curvature.Radii...)
	route.Curvature.Score += other.Curvature.Score
}

// GeoJSON renders the route's node coordinates as a single LineString
// feature.
func (route Route) GeoJSON() *geojson.FeatureCollection {
	coords := make([][]float64, len(route.Nodes))
	for i, n := range route.Nodes {
		coords[i] = []float64{n.Coordinate.Lon(), n.Coordinate.Lat()}
	}

	fc := geojson.NewFeatureCollection()
	feature := geojson.NewLineStringFeature(coords)
	feature.SetProperty("distance", route.Distance)
	feature.SetProperty("time", route.Time)
	feature.SetProperty("intersections", route.Intersections)
	feature.SetProperty("curvature_score", route.Curvature.Score)
	fc.AddFeature(feature)
	return fc
}

// build reconstructs a Route by walking prev backward from goalIndex
// to startIndex, then reversing the walked sequence into forward
// order.
func build(g *graph.Graph, prev []*graph.Edge, transport osm.Transport, startIndex, goalIndex int) Route {
	var route Route

	edge := prev[goalIndex]
	for {
		route.Nodes = append(route.Nodes, g.Node(edge.TargetIndex))
		route.Edges = append(route.Edges, *edge)
		route.Distance += edge.Distance
		route.Time += edge.Time(transport)

		if degree := len(g.EdgesFrom(edge.TargetIndex)); degree > 2 && edge.TargetIndex != goalIndex {
			route.Intersections += degree - 2
		}

		if edge.SourceIndex == startIndex {
			route.Nodes = append(route.Nodes, g.Node(edge.SourceIndex))
			break
		}
		edge = prev[edge.SourceIndex]
	}

	reverseNodes(route.Nodes)
	reverseEdges(route.Edges)
	route.calcCurvature()
	return route
}

func reverseNodes(nodes []graph.Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}

func reverseEdges(edges []graph.Edge) {
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
}
