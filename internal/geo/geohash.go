package geo

import (
	"strings"
)

// geohashAlphabet is the geohash base32 character set. 'a', 'i', 'l' and 'o'
// are left out so hashes cannot be misread as digits.
const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

const (
	DefaultGeohashPrecision = 6
	maxGeohashPrecision     = 12
)

// Geohash encodes the point's latitude and longitude. Nearby points share a
// prefix, which makes the hash a convenient label for a computed center:
//
//	1 → ~5000 km    4 → ~39 km     7 → ~153 m    10 → ~1.2 m
//	2 → ~1250 km    5 → ~5 km      8 → ~19 m     11 → ~15 cm
//	3 → ~156 km     6 → ~1.2 km    9 → ~2.4 m    12 → ~1.9 cm
//
// Altitude and weight do not take part.
func (p GeoPoint) Geohash(precision int) string {
	return EncodeGeohash(p.lat, p.long, precision)
}

// EncodeGeohash interleaves longitude (even bits) and latitude (odd bits),
// bisecting each range in turn, and emits one base32 character per 5 bits.
// Precision outside [1, 12] falls back to DefaultGeohashPrecision or is capped.
func EncodeGeohash(lat, lon float64, precision int) string {
	if precision <= 0 {
		precision = DefaultGeohashPrecision
	}
	if precision > maxGeohashPrecision {
		precision = maxGeohashPrecision
	}

	latRange := [2]float64{minLatitude, maxLatitude}
	lonRange := [2]float64{minLongitude, maxLongitude}

	var hash strings.Builder
	hash.Grow(precision)

	lonBit := true
	bit, ch := 0, 0
	for hash.Len() < precision {
		value, rng := lat, &latRange
		if lonBit {
			value, rng = lon, &lonRange
		}

		mid := (rng[0] + rng[1]) / 2
		if value >= mid {
			ch |= 1 << (4 - bit)
			rng[0] = mid
		} else {
			rng[1] = mid
		}

		lonBit = !lonBit
		if bit++; bit == 5 {
			hash.WriteByte(geohashAlphabet[ch])
			bit, ch = 0, 0
		}
	}

	return hash.String()
}
