package geohash

import (
	"fmt"
)

const (
	// MaxPrecision is the longest geohash this package produces or accepts.
	MaxPrecision = 12

	// MaxLatitude and MaxLongitude bound the two axes symmetrically around 0.
	MaxLatitude  float32 = 90
	MaxLongitude float32 = 180

	bitsPerSymbol = 5
	axisSteps     = 32
)

// bisection is the (low, mid, high) range narrowed once per encoded bit.
type bisection struct {
	low, mid, high float32
}

func newBisection(bound float32) bisection {
	return bisection{low: -bound, mid: 0, high: bound}
}

// step halves the range around v and reports which half v fell in.
func (b *bisection) step(v float32) bool {
	if v >= b.mid {
		b.low = b.mid
		b.mid = (b.mid + b.high) / 2
		return true
	}
	b.high = b.mid
	b.mid = (b.low + b.mid) / 2
	return false
}

// bits runs all bisection steps for v and packs the results most
// significant bit first.
func (b *bisection) bits(v float32) uint32 {
	var out uint32
	for i := 0; i < axisSteps; i++ {
		out <<= 1
		if b.step(v) {
			out |= 1
		}
	}
	return out
}

// Encode returns the geohash of the given point with precision symbols.
func Encode(latitude, longitude float32, precision uint8) (string, error) {
	if err := validatePrecision(int(precision)); err != nil {
		return "", err
	}
	if !validCoordinate(latitude, longitude) {
		return "", fmt.Errorf("%w: got (%v, %v)", ErrInvalidCoordinate, latitude, longitude)
	}

	lat := newBisection(MaxLatitude)
	lon := newBisection(MaxLongitude)
	bits := interleave(lon.bits(longitude), lat.bits(latitude))

	hash := make([]byte, precision)
	for i := range hash {
		shift := 64 - bitsPerSymbol*(i+1)
		hash[i] = Symbol(uint8(bits >> shift))
	}
	return string(hash), nil
}

func validatePrecision(precision int) error {
	if precision < 1 || precision > MaxPrecision {
		return fmt.Errorf("%w: got %d", ErrInvalidPrecision, precision)
	}
	return nil
}

// validCoordinate is written so that NaN fails both range checks.
func validCoordinate(latitude, longitude float32) bool {
	return latitude >= -MaxLatitude && latitude <= MaxLatitude &&
		longitude >= -MaxLongitude && longitude <= MaxLongitude
}
