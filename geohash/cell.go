package geohash

// Dimensions is the nominal size of a cell in metres, measured at the
// equator.
type Dimensions struct {
	Width  float64
	Height float64
}

var cellSizes = [MaxPrecision]Dimensions{
	{Width: 5_000_000, Height: 5_000_000},
	{Width: 1_250_000, Height: 625_000},
	{Width: 156_000, Height: 156_000},
	{Width: 39_100, Height: 19_500},
	{Width: 4_890, Height: 4_890},
	{Width: 1_220, Height: 610},
	{Width: 153, Height: 153},
	{Width: 38.2, Height: 19.1},
	{Width: 4.77, Height: 4.77},
	{Width: 1.19, Height: 0.596},
	{Width: 0.149, Height: 0.149},
	{Width: 0.0372, Height: 0.0186},
}

// CellSize returns the upper bound on cell dimensions for a precision.
func CellSize(precision uint8) (Dimensions, error) {
	if err := validatePrecision(int(precision)); err != nil {
		return Dimensions{}, err
	}
	return cellSizes[precision-1], nil
}
