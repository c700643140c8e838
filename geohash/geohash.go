// Package geohash encodes WGS84 coordinates into base-32 geohash strings by
// recursive interval halving, decodes them back into bounding boxes, and
// derives adjacent cells.
package geohash

// Point is a position on the globe, longitude in [-180, 180] and latitude
// in [-90, 90].
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// BoundingBox is the exact rectangle of positions a geohash denotes.
type BoundingBox struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point {
	return Point{
		Longitude: (b.Min.Longitude + b.Max.Longitude) / 2,
		Latitude:  (b.Min.Latitude + b.Max.Latitude) / 2,
	}
}

// Contains reports whether p lies inside the box, borders included.
func (b BoundingBox) Contains(p Point) bool {
	return p.Longitude >= b.Min.Longitude && p.Longitude <= b.Max.Longitude &&
		p.Latitude >= b.Min.Latitude && p.Latitude <= b.Max.Latitude
}

// Encode returns the geohash of p with the given number of characters.
// Longitude is bisected on even bit indices and latitude on odd ones; a
// value strictly greater than the midpoint takes the upper half. Points
// outside the valid ranges give unspecified results; callers validate.
func Encode(p Point, length int) string {
	out := make([]byte, 0, length)

	var bits, hashValue uint8
	bitsTotal := 0
	minLon, maxLon := -180.0, 180.0
	minLat, maxLat := -90.0, 90.0

	for len(out) < length {
		if bitsTotal%2 == 0 {
			mid := (minLon + maxLon) / 2
			if p.Longitude > mid {
				hashValue = hashValue<<1 + 1
				minLon = mid
			} else {
				hashValue <<= 1
				maxLon = mid
			}
		} else {
			mid := (minLat + maxLat) / 2
			if p.Latitude > mid {
				hashValue = hashValue<<1 + 1
				minLat = mid
			} else {
				hashValue <<= 1
				maxLat = mid
			}
		}

		bits++
		bitsTotal++

		if bits == 5 {
			out = append(out, encodeSymbol(hashValue))
			bits = 0
			hashValue = 0
		}
	}
	return string(out)
}

// EncodeIntWithBits returns the first bits bits of p's geohash packed into
// a uint64, most significant bit first. The bit stream is identical to the
// one Encode produces. bits must be at most 64.
func EncodeIntWithBits(p Point, bits uint) uint64 {
	var hash uint64
	minLon, maxLon := -180.0, 180.0
	minLat, maxLat := -90.0, 90.0

	for i := uint(0); i < bits; i++ {
		if i%2 == 0 {
			mid := (minLon + maxLon) / 2
			if p.Longitude > mid {
				hash = hash<<1 | 1
				minLon = mid
			} else {
				hash <<= 1
				maxLon = mid
			}
		} else {
			mid := (minLat + maxLat) / 2
			if p.Latitude > mid {
				hash = hash<<1 | 1
				minLat = mid
			} else {
				hash <<= 1
				maxLat = mid
			}
		}
	}
	return hash
}

// DecodeBoundingBox returns the exact bounds of hash. It fails with
// ErrInvalidSymbol on characters outside the alphabet.
func DecodeBoundingBox(hash string) (BoundingBox, error) {
	minLon, maxLon := -180.0, 180.0
	minLat, maxLat := -90.0, 90.0
	isLon := true

	for i := 0; i < len(hash); i++ {
		v, err := decodeSymbol(hash[i])
		if err != nil {
			return BoundingBox{}, err
		}
		for bs := 4; bs >= 0; bs-- {
			bit := (v >> uint(bs)) & 1
			if isLon {
				mid := (minLon + maxLon) / 2
				if bit == 1 {
					minLon = mid
				} else {
					maxLon = mid
				}
			} else {
				mid := (minLat + maxLat) / 2
				if bit == 1 {
					minLat = mid
				} else {
					maxLat = mid
				}
			}
			isLon = !isLon
		}
	}

	return BoundingBox{
		Min: Point{Longitude: minLon, Latitude: minLat},
		Max: Point{Longitude: maxLon, Latitude: maxLat},
	}, nil
}

// Decode returns the center of hash's bounding box together with half the
// box width (lonErr) and half its height (latErr).
func Decode(hash string) (center Point, lonErr, latErr float64, err error) {
	box, err := DecodeBoundingBox(hash)
	if err != nil {
		return Point{}, 0, 0, err
	}
	lonErr = (box.Max.Longitude - box.Min.Longitude) / 2
	latErr = (box.Max.Latitude - box.Min.Latitude) / 2
	return box.Center(), lonErr, latErr, nil
}
