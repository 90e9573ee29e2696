package osm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportContains(t *testing.T) {
	assert.True(t, All.Contains(Car))
	assert.True(t, All.Contains(Bike))
	assert.True(t, All.Contains(Walk))
	assert.False(t, CarBike.Contains(Walk))
	assert.True(t, CarBike.Contains(Car))
	assert.True(t, CarBike.Contains(Bike))
	assert.False(t, BikeWalk.Contains(Car))
	assert.True(t, BikeWalk.Contains(Bike))
	assert.True(t, BikeWalk.Contains(Walk))
	assert.True(t, Car.Contains(Car))
	assert.False(t, Car.Contains(Bike))
}

func TestTransportFromHighway(t *testing.T) {
	assert.Equal(t, Car, TransportFromHighway(Motorway))
	assert.Equal(t, Bike, TransportFromHighway(Cycleway))
	assert.Equal(t, Walk, TransportFromHighway(Footway))
	assert.Equal(t, CarBike, TransportFromHighway(Primary))
	assert.Equal(t, BikeWalk, TransportFromHighway(Track))
	assert.Equal(t, All, TransportFromHighway(Residential))
}
