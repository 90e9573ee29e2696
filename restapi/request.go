package restapi

import "github.com/jfranc38/routeweave/osm"

// request is the wire shape of a shortest-path call: an ordered list
// of waypoints plus the transport/routing/avoid_unpaved options.
type request struct {
	Stops        []osm.Coordinate `json:"stops"`
	Transport    string           `json:"transport"`
	Routing      string           `json:"routing"`
	AvoidUnpaved bool             `json:"avoid_unpaved"`
}

func (r request) params() (osm.Params, error) {
	transport, err := osm.TransportFromString(r.Transport)
	if err != nil {
		return osm.Params{}, err
	}
	routing, err := osm.RoutingFromString(r.Routing)
	if err != nil {
		return osm.Params{}, err
	}
	return osm.NewParams(transport, routing, r.AvoidUnpaved), nil
}
