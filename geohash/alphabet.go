package geohash

// alphabet is the standard geohash base-32 symbol table. The letters a, i, l
// and o are left out.
const alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

const invalidValue = 0xff

var values [256]uint8

func init() {
	for i := range values {
		values[i] = invalidValue
	}
	for i := 0; i < len(alphabet); i++ {
		values[alphabet[i]] = uint8(i)
	}
}

// Symbol returns the alphabet symbol for a 5-bit value. Bits above the low
// five are ignored.
func Symbol(v uint8) byte {
	return alphabet[v&0x1f]
}

// SymbolValue returns the 5-bit value of an alphabet symbol.
func SymbolValue(r rune) (uint8, error) {
	if r < 0 || r >= rune(len(values)) || values[r] == invalidValue {
		return 0, &SymbolError{Symbol: r, Index: -1}
	}
	return values[r], nil
}
