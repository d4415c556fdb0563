package geoindex

import (
	"github.com/dhconnelly/rtreego"

	"geohash-codec/models"
)

// pointTolerance is the half-size of the rectangle standing in for a point.
const pointTolerance = 1e-6

// spatialLocation is a location stored in the R-tree.
type spatialLocation struct {
	models.Location
	rect rtreego.Rect
}

// Bounds returns a small rectangle around the location.
func (s *spatialLocation) Bounds() rtreego.Rect {
	return s.rect
}

func newSpatialLocation(loc models.Location) *spatialLocation {
	p := rtreego.Point{float64(loc.Longitude), float64(loc.Latitude)}
	return &spatialLocation{Location: loc, rect: p.ToRect(pointTolerance)}
}

// newRTree returns an empty two-dimensional tree (lon, lat).
func newRTree() *rtreego.Rtree {
	return rtreego.NewTree(2, 25, 50)
}

// searchRTree returns the locations whose rectangle intersects the square
// of half-size radius degrees around (lon, lat).
func searchRTree(tree *rtreego.Rtree, lon, lat, radius float64) []models.Location {
	point := rtreego.Point{lon, lat}
	hits := tree.SearchIntersect(point.ToRect(radius))
	out := make([]models.Location, 0, len(hits))
	for _, hit := range hits {
		out = append(out, hit.(*spatialLocation).Location)
	}
	return out
}
