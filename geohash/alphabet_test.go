package geohash_test

import (
	"errors"
	"testing"

	"geohash-codec/geohash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const symbols = "0123456789bcdefghjkmnpqrstuvwxyz"

func TestSymbolRoundTrip(t *testing.T) {
	seen := make(map[byte]bool)
	for v := uint8(0); v < 32; v++ {
		s := geohash.Symbol(v)
		assert.Equal(t, symbols[v], s)
		assert.False(t, seen[s], "duplicate symbol %q", s)
		seen[s] = true

		back, err := geohash.SymbolValue(rune(s))
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
	assert.Len(t, seen, 32)
}

func TestSymbolValueRejectsExcludedLetters(t *testing.T) {
	for _, r := range []rune{'a', 'i', 'l', 'o', 'A', 'B', ' ', '-', 'é', -1} {
		_, err := geohash.SymbolValue(r)
		require.Error(t, err, "symbol %q", r)
		assert.ErrorIs(t, err, geohash.ErrInvalidSymbol)

		var symErr *geohash.SymbolError
		require.True(t, errors.As(err, &symErr))
		assert.Equal(t, r, symErr.Symbol)
		assert.Equal(t, -1, symErr.Index)
	}
}
