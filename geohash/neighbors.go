package geohash

// Direction names one of the eight cells around a geohash cell.
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
		return "unknown"
	}
	return directionNames[d]
}

// offset returns the (lat, lon) cell step for the direction.
func (d Direction) offset() (int, int) {
	switch d {
	case North:
		return 1, 0
	case NorthEast:
		return 1, 1
	case East:
		return 0, 1
	case SouthEast:
		return -1, 1
	case South:
		return -1, 0
	case SouthWest:
		return -1, -1
	case West:
		return 0, -1
	default:
		return 1, -1
	}
}

// Neighbor returns the adjacent cell of the same precision in the given
// direction. Longitude wraps at the antimeridian; at the poles the result
// stays in the pole row.
func Neighbor(hash string, direction Direction) (string, error) {
	bits, n, err := unpack(hash)
	if err != nil {
		return "", err
	}
	lonBits, latBits := deinterleave(bits)
	dlat, dlon := direction.offset()

	lonBits = shiftAxis(lonBits, (n+1)/2, dlon, true)
	latBits = shiftAxis(latBits, n/2, dlat, false)

	bits = interleave(lonBits, latBits)
	out := make([]byte, len(hash))
	for i := range out {
		out[i] = Symbol(uint8(bits >> (64 - bitsPerSymbol*(i+1))))
	}
	return string(out), nil
}

// shiftAxis moves the cell index held in the top n bits of axis by delta
// cells. Past the last cell the index wraps when wrap is set and stays put
// otherwise.
func shiftAxis(axis uint32, n, delta int, wrap bool) uint32 {
	cells := uint64(1) << n
	v := int64(axis >> (32 - n))
	v += int64(delta)
	switch {
	case v >= 0 && uint64(v) < cells:
	case wrap:
		v = (v + int64(cells)) % int64(cells)
	default:
		return axis
	}
	return uint32(v) << (32 - n)
}

// Neighbors returns the eight cells around hash, starting north and going
// clockwise.
func Neighbors(hash string) ([]string, error) {
	out := make([]string, 0, NorthWest+1)
	for d := North; d <= NorthWest; d++ {
		n, err := Neighbor(hash, d)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
