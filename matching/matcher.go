package matching

import (
	"errors"
	"fmt"

	"geohash-codec/geoindex"
	"geohash-codec/models"
)

var ErrNoneNearby = errors.New("no locations nearby")

// Searcher returns candidate locations around a point.
type Searcher interface {
	SearchNearbyWithRetries(lat, lon float32, maxRetries int) ([]models.Location, error)
}

// Match is the closest location and its great-circle distance in metres.
type Match struct {
	Location models.Location `json:"location"`
	Distance float64         `json:"distance_m"`
}

// FindNearest asks the searcher for candidates around (lat, lon) and returns
// the closest one.
func FindNearest(s Searcher, lat, lon float32, maxRetries int) (*Match, error) {
	candidates, err := s.SearchNearbyWithRetries(lat, lon, maxRetries)
	if err != nil {
		if errors.Is(err, geoindex.ErrNoResults) {
			return nil, ErrNoneNearby
		}
		return nil, fmt.Errorf("search nearby: %w", err)
	}

	var best *Match
	for _, c := range candidates {
		d := geoindex.Haversine(float64(lat), float64(lon), float64(c.Latitude), float64(c.Longitude))
		if best == nil || d < best.Distance || (d == best.Distance && c.ID < best.Location.ID) {
			best = &Match{Location: c, Distance: d}
		}
	}
	if best == nil {
		return nil, ErrNoneNearby
	}
	return best, nil
}
