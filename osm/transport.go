package osm

import "fmt"

// Transport is the closed enumeration of routing transport modes.
// Car, Bike, and Walk are atomic; All, CarBike, and BikeWalk are
// composites describing which atomic modes a highway class admits.
type Transport uint8

const (
	Car Transport = iota
	Bike
	Walk

	All
	CarBike
	BikeWalk
)

var transportNames = map[string]Transport{
	"car":      Car,
	"bike":     Bike,
	"walk":     Walk,
	"all":      All,
	"car_bike": CarBike,
	"bike_walk": BikeWalk,
}

// TransportFromString parses a request's transport string. Only the
// atomic modes ("car", "bike", "walk") are meaningful as request
// input; the composites exist to classify highways.
func TransportFromString(s string) (Transport, error) {
	t, ok := transportNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown transport mode: %q", s)
	}
	return t, nil
}

// Contains reports whether this transport set admits other.
func (t Transport) Contains(other Transport) bool {
	if t == All || t == other {
		return true
	}
	if t == CarBike && (other == Car || other == Bike) {
		return true
	}
	if t == BikeWalk && (other == Bike || other == Walk) {
		return true
	}
	return false
}

// TransportFromHighway returns the transport set that may traverse h.
func TransportFromHighway(h Highway) Transport {
	switch h {
	case Residential, Tertiary, Unclassified, Service, LivingStreet, TertiaryLink:
		return All
	case Secondary, SecondaryLink, Primary, PrimaryLink:
		return CarBike
	case Track, Road:
		return BikeWalk
	case Motorway, MotorwayLink, Trunk, TrunkLink:
		return Car
	case Cycleway:
		return Bike
	case Pedestrian, Footway, Path, Steps:
		return Walk
	default:
		return All
	}
}

// Routing is the optimization objective: minimize travel time or
// minimize distance traveled.
type Routing uint8

const (
	Time Routing = iota
	Distance
)

var routingNames = map[string]Routing{
	"time":     Time,
	"distance": Distance,
}

// RoutingFromString parses a request's routing string.
func RoutingFromString(s string) (Routing, error) {
	r, ok := routingNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown routing objective: %q", s)
	}
	return r, nil
}

// Params bundles the per-query transport, objective, and unpaved-road
// avoidance flag that drive edge cost/relevance throughout the router.
type Params struct {
	Transport    Transport
	Routing      Routing
	AvoidUnpaved bool
}

// NewParams builds a Params.
func NewParams(transport Transport, routing Routing, avoidUnpaved bool) Params {
	return Params{Transport: transport, Routing: routing, AvoidUnpaved: avoidUnpaved}
}
