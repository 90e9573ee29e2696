package osm

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/umahmood/haversine"
)

// fixedPointScale is the resolution at which Coordinate stores degrees:
// one part in 1e-7, i.e. roughly 1.1cm at the equator.
const fixedPointScale = 1e-7

// earthRadiusMeters is the sphere radius used by the haversine formula.
const earthRadiusMeters = 6_371_000.0

// Coordinate is a latitude/longitude pair stored as fixed-point
// integers at 1e-7 degree resolution. Equality (Equal, ==) compares
// the exact fixed-point values; the coarser identity of coordinates
// that round to the same one-decimal degree is CellKey.
type Coordinate struct {
	lat int32
	lon int32
}

// NewCoordinate builds a Coordinate from raw 1e-7-degree fixed-point
// integers, the representation the OSM PBF contract yields node
// latitude/longitude in.
func NewCoordinate(lat, lon int32) Coordinate {
	return Coordinate{lat: lat, lon: lon}
}

// CoordinateFromDegrees builds a Coordinate from floating point degrees.
func CoordinateFromDegrees(lat, lon float64) Coordinate {
	return Coordinate{
		lat: int32(lat / fixedPointScale),
		lon: int32(lon / fixedPointScale),
	}
}

// Lat returns the latitude in decimal degrees.
func (c Coordinate) Lat() float64 {
	return float64(c.lat) * fixedPointScale
}

// Lon returns the longitude in decimal degrees.
func (c Coordinate) Lon() float64 {
	return float64(c.lon) * fixedPointScale
}

// Equal reports whether two coordinates hold the same fixed-point
// value. Defined so that github.com/google/go-cmp, which otherwise
// panics on unexported fields, can compare Coordinate values.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.lat == other.lat && c.lon == other.lon
}

// Distance returns the great-circle distance to other in meters,
// using the haversine formula via github.com/umahmood/haversine.
func (c Coordinate) Distance(other Coordinate) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: c.Lat(), Lon: c.Lon()},
		haversine.Coord{Lat: other.Lat(), Lon: other.Lon()},
	)
	return km * 1000
}

// CellKey is the coarsened identity of a Coordinate used as a spatial
// grid key: two coordinates within the same ~11km cell (0.1 decimal
// degree) share a CellKey. Kept distinct from Coordinate itself so
// that exact-precision identity is never conflated with cell identity
// (see DESIGN.md, graph/grid.go).
type CellKey struct {
	Lat10 int32
	Lon10 int32
}

// Cell returns the CellKey this coordinate falls into.
func (c Coordinate) Cell() CellKey {
	return CellKey{
		Lat10: int32(math.Round(c.Lat() * 10.0)),
		Lon10: int32(math.Round(c.Lon() * 10.0)),
	}
}

// CellAt returns the CellKey offset by (dLat, dLon) whole degrees from
// this coordinate's own cell — used by the ring search in graph/grid.go.
func (c Coordinate) CellAt(dLat, dLon int) CellKey {
	return CellKey{
		Lat10: int32(math.Round((c.Lat()+float64(dLat))*10.0)),
		Lon10: int32(math.Round((c.Lon()+float64(dLon))*10.0)),
	}
}

// coordinateJSON is the wire shape { "lat": f64, "lon": f64 }.
type coordinateJSON struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MarshalJSON encodes the coordinate as { "lat": ..., "lon": ... }.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(coordinateJSON{Lat: c.Lat(), Lon: c.Lon()})
}

// UnmarshalJSON accepts either a 2-element [lat, lon] array or an
// { "lat": ..., "lon": ... } object.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err == nil {
		*c = CoordinateFromDegrees(pair[0], pair[1])
		return nil
	}

	var obj coordinateJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("coordinate: expected [lat, lon] or {lat, lon}: %w", err)
	}
	*c = CoordinateFromDegrees(obj.Lat, obj.Lon)
	return nil
}

// GobEncode/GobDecode round-trip the exact fixed-point lat/lon fields
// directly, rather than converting through float degrees, so encoding
// and decoding a Coordinate can never introduce rounding drift.
func (c Coordinate) GobEncode() ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:4], uint32(c.lat))
	binary.BigEndian.PutUint32(buf[4:8], uint32(c.lon))
	return buf, nil
}

func (c *Coordinate) GobDecode(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("coordinate: invalid gob payload length %d", len(data))
	}
	c.lat = int32(binary.BigEndian.Uint32(data[0:4]))
	c.lon = int32(binary.BigEndian.Uint32(data[4:8]))
	return nil
}
