package geohash

import (
	"fmt"
	"math"
	"strings"
)

// Direction is one of the eight compass points.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

func (d Direction) String() string {
	if d < North || d > NorthWest {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection maps a compass abbreviation ("n", "ne", ...) to its
// Direction, ignoring case.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// directionSteps holds the latitude and longitude cell steps per direction.
var directionSteps = [...]struct{ lat, lon float64 }{
	North:     {1, 0},
	NorthEast: {1, 1},
	East:      {0, 1},
	SouthEast: {-1, 1},
	South:     {-1, 0},
	SouthWest: {-1, -1},
	West:      {0, -1},
	NorthWest: {1, -1},
}

// Neighbors holds the eight cells adjacent to a geohash, all with the same
// precision as the source hash.
type Neighbors struct {
	North     string `json:"n"`
	NorthEast string `json:"ne"`
	East      string `json:"e"`
	SouthEast string `json:"se"`
	South     string `json:"s"`
	SouthWest string `json:"sw"`
	West      string `json:"w"`
	NorthWest string `json:"nw"`
}

// Strings returns the eight neighbors in N, NE, E, SE, S, SW, W, NW order.
func (n Neighbors) Strings() []string {
	return []string{
		n.North, n.NorthEast, n.East, n.SouthEast,
		n.South, n.SouthWest, n.West, n.NorthWest,
	}
}

// Neighbor returns the geohash adjacent to hash in the given direction, at
// the same precision. The center is nudged by twice the half-error on each
// axis, which lands it in the middle of the adjacent cell. Stepping across
// the poles or the antimeridian is not adjusted for.
func Neighbor(hash string, dir Direction) (string, error) {
	center, lonErr, latErr, err := Decode(hash)
	if err != nil {
		return "", err
	}
	return nudge(center, lonErr, latErr, dir, len(hash)), nil
}

// GetNeighbors returns all eight neighbors of hash. It decodes once and
// reuses the center, which is observably identical to decoding per
// direction.
func GetNeighbors(hash string) (Neighbors, error) {
	center, lonErr, latErr, err := Decode(hash)
	if err != nil {
		return Neighbors{}, err
	}
	return Neighbors{
		North:     nudge(center, lonErr, latErr, North, len(hash)),
		NorthEast: nudge(center, lonErr, latErr, NorthEast, len(hash)),
		East:      nudge(center, lonErr, latErr, East, len(hash)),
		SouthEast: nudge(center, lonErr, latErr, SouthEast, len(hash)),
		South:     nudge(center, lonErr, latErr, South, len(hash)),
		SouthWest: nudge(center, lonErr, latErr, SouthWest, len(hash)),
		West:      nudge(center, lonErr, latErr, West, len(hash)),
		NorthWest: nudge(center, lonErr, latErr, NorthWest, len(hash)),
	}, nil
}

func nudge(center Point, lonErr, latErr float64, dir Direction, length int) string {
	step := directionSteps[dir]
	return Encode(Point{
		Longitude: center.Longitude + 2*math.Abs(lonErr)*step.lon,
		Latitude:  center.Latitude + 2*math.Abs(latErr)*step.lat,
	}, length)
}
