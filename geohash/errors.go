package geohash

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPrecision  = errors.New("geohash: precision must be between 1 and 12")
	ErrInvalidCoordinate = errors.New("geohash: latitude must be between -90 and 90, longitude between -180 and 180")
	ErrInvalidSymbol     = errors.New("geohash: invalid symbol")
)

// SymbolError reports a character that is not part of the geohash alphabet.
// Index is the symbol position within the decoded string, or -1 when the
// symbol was looked up on its own.
type SymbolError struct {
	Symbol rune
	Index  int
}

func (e *SymbolError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s %q", ErrInvalidSymbol, e.Symbol)
	}
	return fmt.Sprintf("%s %q at position %d", ErrInvalidSymbol, e.Symbol, e.Index)
}

func (e *SymbolError) Unwrap() error {
	return ErrInvalidSymbol
}
