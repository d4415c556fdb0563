package geohash

// spread moves the 32 bits of x to the even bit positions of a 64-bit word,
// so that bit k of x lands on bit 2k.
func spread(x uint32) uint64 {
	v := uint64(x)
	v = (v | v<<16) & 0x0000ffff0000ffff
	v = (v | v<<8) & 0x00ff00ff00ff00ff
	v = (v | v<<4) & 0x0f0f0f0f0f0f0f0f
	v = (v | v<<2) & 0x3333333333333333
	v = (v | v<<1) & 0x5555555555555555
	return v
}

// squash is the inverse of spread: it gathers the even bits of v.
func squash(v uint64) uint32 {
	v &= 0x5555555555555555
	v = (v | v>>1) & 0x3333333333333333
	v = (v | v>>2) & 0x0f0f0f0f0f0f0f0f
	v = (v | v>>4) & 0x00ff00ff00ff00ff
	v = (v | v>>8) & 0x0000ffff0000ffff
	v = (v | v>>16) & 0x00000000ffffffff
	return uint32(v)
}

// interleave merges two axis sequences, longitude first. Both inputs and
// the result are most significant bit first, so bit 63 of the result is
// longitude bit 0 and bit 62 is latitude bit 0.
func interleave(lon, lat uint32) uint64 {
	return spread(lon)<<1 | spread(lat)
}

// deinterleave splits an interleaved word back into its axis sequences.
func deinterleave(bits uint64) (lon, lat uint32) {
	return squash(bits >> 1), squash(bits)
}
