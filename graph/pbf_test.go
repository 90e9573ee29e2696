package graph

import (
	"testing"

	"github.com/gotidy/ptr"
	"github.com/qedus/osmpbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfranc38/routeweave/osm"
)

func TestMetaFromWayUsesExplicitMaxSpeed(t *testing.T) {
	way := &osmpbf.Way{Tags: map[string]string{
		"highway":  "residential",
		"maxspeed": "40",
	}}

	meta, ok := metaFromWay(way)
	require.True(t, ok)
	assert.Equal(t, osm.Residential, meta.Highway)
	assert.Equal(t, uint8(40), meta.Speed.Value())
}

func TestMetaFromWayFallsBackToDefaultSpeed(t *testing.T) {
	way := &osmpbf.Way{Tags: map[string]string{"highway": "motorway"}}

	meta, ok := metaFromWay(way)
	require.True(t, ok)
	assert.Equal(t, uint8(120), meta.Speed.Value())
}

func TestMetaFromWaySkipsUnrecognizedHighway(t *testing.T) {
	way := &osmpbf.Way{Tags: map[string]string{"highway": "raceway"}}

	_, ok := metaFromWay(way)
	assert.False(t, ok)
}

func TestGradeComputesAbsolutePercent(t *testing.T) {
	source := Node{Elevation: ptr.Float32(110)}
	target := Node{Elevation: ptr.Float32(100)}

	g := grade(source, target, 100)
	require.NotNil(t, g)
	assert.Equal(t, uint8(10), *g)
}

func TestGradeAbsentWithoutBothElevations(t *testing.T) {
	source := Node{Elevation: ptr.Float32(110)}
	target := Node{}

	assert.Nil(t, grade(source, target, 100))
}
