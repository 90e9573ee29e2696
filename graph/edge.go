package graph

import "github.com/jfranc38/routeweave/osm"

// Meta carries the per-edge attributes that drive cost and relevance
// decisions: the highway class, optional surface, speed, and optional
// grade percent (defined only when both endpoints have an elevation).
type Meta struct {
	Highway osm.Highway
	Surface *osm.Surface
	Speed   osm.Kmh
	Grade   *uint8
}

// bikeSpeed and walkSpeed are the nominal constant speeds used only to
// report travel time for non-motorized modes; their routing cost stays
// distance-based because Bike and Walk are assumed to have constant
// speed, so minimizing distance already minimizes time for them.
var (
	bikeSpeed = osm.NewKmh(20)
	walkSpeed = osm.NewKmh(5)
)

// Edge is a directed connection between two node indices in the CSR
// adjacency array. Edges are ordered lexicographically by
// (SourceIndex, TargetIndex); that ordering is the CSR construction
// invariant.
type Edge struct {
	SourceIndex int
	TargetIndex int
	Distance    uint32
	Meta        Meta
}

// Cost returns this edge's weight for the given transport mode and
// routing objective: seconds when driving for time, meters otherwise.
func (e Edge) Cost(params osm.Params) uint32 {
	if params.Transport == osm.Car && params.Routing == osm.Time {
		return e.Meta.Speed.Time(e.Distance)
	}
	return e.Distance
}

// Time returns the travel time in seconds for the given transport
// mode, using the edge's own speed for Car and fixed nominal speeds
// for Bike/Walk.
func (e Edge) Time(transport osm.Transport) uint32 {
	switch transport {
	case osm.Car:
		return e.Meta.Speed.Time(e.Distance)
	case osm.Bike:
		return bikeSpeed.Time(e.Distance)
	case osm.Walk:
		return walkSpeed.Time(e.Distance)
	default:
		return e.Meta.Speed.Time(e.Distance)
	}
}

// IsPaved reports whether the edge is paved: any trunk-grade-or-higher
// highway class is paved regardless of surface tag; below that, only
// an explicit asphalt/concrete/paved surface counts.
func (e Edge) IsPaved() bool {
	if e.Meta.Highway.IsAtLeastTrunkGrade() {
		return true
	}
	if e.Meta.Surface != nil {
		return e.Meta.Surface.IsPavedSurface()
	}
	return false
}

// IsRelevant reports whether this edge may be used under params: its
// highway's transport set must admit params.Transport, and if
// AvoidUnpaved is set the edge must additionally be paved.
func (e Edge) IsRelevant(params osm.Params) bool {
	matches := osm.TransportFromHighway(e.Meta.Highway).Contains(params.Transport)
	if params.AvoidUnpaved {
		return matches && e.IsPaved()
	}
	return matches
}

// less implements the CSR sort order: (SourceIndex, TargetIndex).
func less(a, b Edge) bool {
	if a.SourceIndex != b.SourceIndex {
		return a.SourceIndex < b.SourceIndex
	}
	return a.TargetIndex < b.TargetIndex
}
