package osm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// milesPerHourToKmh is the conversion factor applied to "<n> mph"
// maxspeed tags.
const milesPerHourToKmh = 1.609344

// Kmh is a speed in whole kilometers per hour.
type Kmh struct {
	speed uint8
}

// NewKmh wraps a raw km/h value.
func NewKmh(speed uint8) Kmh {
	return Kmh{speed: speed}
}

// Value returns the speed as km/h.
func (k Kmh) Value() uint8 {
	return k.speed
}

// Equal, GobEncode and GobDecode let go-cmp and encoding/gob handle a
// Kmh despite its unexported field; gob carries it as a single byte.
func (k Kmh) Equal(other Kmh) bool { return k.speed == other.speed }

func (k Kmh) GobEncode() ([]byte, error) { return []byte{k.speed}, nil }

func (k *Kmh) GobDecode(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("kmh: invalid gob payload length %d", len(data))
	}
	k.speed = data[0]
	return nil
}

// Time returns the time in seconds to cover distanceMeters at this speed.
func (k Kmh) Time(distanceMeters uint32) uint32 {
	metersPerSecond := float64(k.speed) / 3.6
	return uint32(math.Round(float64(distanceMeters) / metersPerSecond))
}

// KmhFromMaxSpeedTag parses a way's `maxspeed` tag: a bare integer
// (km/h) or "<n> mph". Any other form is reported as absent.
func KmhFromMaxSpeedTag(tag string) (Kmh, bool) {
	if speed, err := strconv.ParseUint(tag, 10, 8); err == nil {
		return NewKmh(uint8(speed)), true
	}

	fields := strings.Fields(tag)
	if len(fields) != 2 || fields[1] != "mph" {
		return Kmh{}, false
	}
	mph, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil {
		return Kmh{}, false
	}
	kmh := float64(mph) * milesPerHourToKmh
	return NewKmh(uint8(kmh)), true
}
