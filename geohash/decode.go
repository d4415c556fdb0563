package geohash

import (
	"unicode/utf8"
)

// Box is the rectangle covered by a geohash cell.
type Box struct {
	MinLat, MaxLat float32
	MinLon, MaxLon float32
}

// Center returns the midpoint of the box.
func (b Box) Center() (lat, lon float32) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}

// Contains reports whether the point lies inside the box, edges included.
func (b Box) Contains(lat, lon float32) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// Height returns the latitude span of the box in degrees.
func (b Box) Height() float32 { return b.MaxLat - b.MinLat }

// Width returns the longitude span of the box in degrees.
func (b Box) Width() float32 { return b.MaxLon - b.MinLon }

// Decode returns the centre of the cell named by hash. The original point
// that produced hash lies within half a cell of the result on each axis.
func Decode(hash string) (latitude, longitude float32, err error) {
	c, err := decodeCell(hash)
	if err != nil {
		return 0, 0, err
	}
	return c.lat, c.lon, nil
}

// DecodeBox returns the cell rectangle named by hash.
func DecodeBox(hash string) (Box, error) {
	c, err := decodeCell(hash)
	if err != nil {
		return Box{}, err
	}
	return Box{
		MinLat: c.lat - c.latHalf,
		MaxLat: c.lat + c.latHalf,
		MinLon: c.lon - c.lonHalf,
		MaxLon: c.lon + c.lonHalf,
	}, nil
}

// Valid reports whether hash is a well-formed geohash of supported length.
func Valid(hash string) error {
	_, _, err := unpack(hash)
	return err
}

type cell struct {
	lat, lon         float32
	latHalf, lonHalf float32
}

func decodeCell(hash string) (cell, error) {
	bits, n, err := unpack(hash)
	if err != nil {
		return cell{}, err
	}
	lonBits, latBits := deinterleave(bits)

	// Longitude takes the even positions, so it gets the extra bit when the
	// total is odd.
	var c cell
	c.lon, c.lonHalf = reconstruct(lonBits, (n+1)/2, MaxLongitude)
	c.lat, c.latHalf = reconstruct(latBits, n/2, MaxLatitude)
	return c, nil
}

// unpack maps every symbol of hash to its 5-bit value and packs them into a
// left-aligned word. It returns the word and the number of bits used.
func unpack(hash string) (uint64, int, error) {
	count := utf8.RuneCountInString(hash)
	if err := validatePrecision(count); err != nil {
		return 0, 0, err
	}

	var bits uint64
	i := 0
	for _, r := range hash {
		v, err := SymbolValue(r)
		if err != nil {
			return 0, 0, &SymbolError{Symbol: r, Index: i}
		}
		shift := 64 - bitsPerSymbol*(i+1)
		bits |= uint64(v) << shift
		i++
	}
	return bits, bitsPerSymbol * count, nil
}

// reconstruct walks n axis bits starting from 0, adding bound/2^(i+1) for a
// set bit and subtracting it otherwise. The result is the centre of the
// cell; half is the remaining half-width.
func reconstruct(bits uint32, n int, bound float32) (center, half float32) {
	step := bound
	for i := 0; i < n; i++ {
		step /= 2
		if bits&(1<<(31-i)) != 0 {
			center += step
		} else {
			center -= step
		}
	}
	return center, step
}
