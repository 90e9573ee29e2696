package osm

import "strings"

// Surface is the closed enumeration of OSM surface classes this router
// distinguishes. It is only ever used to decide whether a way is paved.
type Surface uint8

const (
	Paved Surface = iota
	Unpaved
	Asphalt
	Concrete
	PavingStones
	Sett
	Cobblestone
	Metal
	Wood
	Compacted
	FineGravel
	Gravel
	Pebblestone
	Plastic
	GrassPaver
	Grass
	Dirt
	Earth
	Mud
	Sand
	Ground
)

var surfaceNames = map[string]Surface{
	"paved":         Paved,
	"unpaved":       Unpaved,
	"asphalt":       Asphalt,
	"concrete":      Concrete,
	"paving_stones": PavingStones,
	"sett":          Sett,
	"cobblestone":   Cobblestone,
	"metal":         Metal,
	"wood":          Wood,
	"compacted":     Compacted,
	"fine_gravel":   FineGravel,
	"gravel":        Gravel,
	"pebblestone":   Pebblestone,
	"plastic":       Plastic,
	"grass_paver":   GrassPaver,
	"grass":         Grass,
	"dirt":          Dirt,
	"earth":         Earth,
	"mud":           Mud,
	"sand":          Sand,
	"ground":        Ground,
}

// SurfaceFromTag parses a way's `surface` tag value, if present.
func SurfaceFromTag(tag string) (Surface, bool) {
	s, ok := surfaceNames[strings.ToLower(tag)]
	return s, ok
}

// IsPavedSurface reports whether this surface is itself considered
// paved (asphalt, concrete, or the generic "paved" tag value).
func (s Surface) IsPavedSurface() bool {
	switch s {
	case Asphalt, Concrete, Paved:
		return true
	default:
		return false
	}
}
