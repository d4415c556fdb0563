// Package geoindex keeps locations in memory and finds the ones near a
// point, using geohash buckets, an R-tree or a quadtree.
//
// An Index is not safe for concurrent use.
package geoindex

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dhconnelly/rtreego"

	"geohash-codec/geohash"
	"geohash-codec/models"
)

type Technique string

const (
	GeohashingTechnique Technique = "geohashing"
	RTreeTechnique      Technique = "rtree"
	QuadtreeTechnique   Technique = "quadtree"
)

// DefaultPrecision is the bucket precision used when Options leaves it unset.
const DefaultPrecision = 7

var (
	ErrUnsupportedTechnique = errors.New("unsupported geo-indexing technique")
	ErrNoResults            = errors.New("no nearby points found after maximum retries")
)

// ParseTechnique maps a configuration value to a Technique.
func ParseTechnique(s string) (Technique, error) {
	switch t := Technique(strings.ToLower(strings.TrimSpace(s))); t {
	case GeohashingTechnique, RTreeTechnique, QuadtreeTechnique:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedTechnique, s)
	}
}

// Options configures an Index.
type Options struct {
	Technique Technique
	// Precision is the geohash length of the buckets and of the first
	// geohashing search.
	Precision uint8
	// Radius is the first search radius, in degrees, for the rtree and
	// quadtree techniques.
	Radius float64
	Logger *slog.Logger
}

// Index is an in-memory set of locations searchable by proximity.
type Index struct {
	technique Technique
	precision uint8
	radius    float64
	log       *slog.Logger

	buckets  map[string][]models.Location
	rtree    *rtreego.Rtree
	quadtree *Quadtree
	size     int
}

// New creates an empty Index for the given technique.
func New(opts Options) (*Index, error) {
	if opts.Technique == "" {
		opts.Technique = GeohashingTechnique
	}
	if _, err := ParseTechnique(string(opts.Technique)); err != nil {
		return nil, err
	}
	if opts.Precision == 0 {
		opts.Precision = DefaultPrecision
	}
	if opts.Precision > geohash.MaxPrecision {
		return nil, fmt.Errorf("%w: got %d", geohash.ErrInvalidPrecision, opts.Precision)
	}
	if opts.Radius <= 0 {
		opts.Radius = 0.01
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	idx := &Index{
		technique: opts.Technique,
		precision: opts.Precision,
		radius:    opts.Radius,
		log:       opts.Logger.With("technique", string(opts.Technique)),
	}
	switch idx.technique {
	case GeohashingTechnique:
		idx.buckets = make(map[string][]models.Location)
	case RTreeTechnique:
		idx.rtree = newRTree()
	case QuadtreeTechnique:
		idx.quadtree = NewQuadtree(WorldBounds)
	}
	return idx, nil
}

// Technique returns the technique the index was built with.
func (idx *Index) Technique() Technique { return idx.technique }

// Len returns the number of indexed locations.
func (idx *Index) Len() int { return idx.size }

// Insert tags loc with its full-precision geohash and adds it to the index.
// The tagged location is returned.
func (idx *Index) Insert(loc models.Location) (models.Location, error) {
	hash, err := geohash.Encode(loc.Latitude, loc.Longitude, geohash.MaxPrecision)
	if err != nil {
		return models.Location{}, fmt.Errorf("index location %q: %w", loc.ID, err)
	}
	loc.Geohash = hash

	switch idx.technique {
	case GeohashingTechnique:
		key := hash[:idx.precision]
		idx.buckets[key] = append(idx.buckets[key], loc)
	case RTreeTechnique:
		idx.rtree.Insert(newSpatialLocation(loc))
	case QuadtreeTechnique:
		idx.quadtree.Insert(loc)
	}
	idx.size++
	return loc, nil
}

// SearchNearbyWithRetries tries to find locations near (lat, lon), widening
// the search after every empty attempt: the radius doubles for rtree and
// quadtree, the geohash precision drops by one symbol for geohashing.
func (idx *Index) SearchNearbyWithRetries(lat, lon float32, maxRetries int) ([]models.Location, error) {
	if _, err := geohash.Encode(lat, lon, idx.precision); err != nil {
		return nil, err
	}
	if maxRetries < 1 {
		maxRetries = 1
	}

	radius := idx.radius
	precision := idx.precision
	var results []models.Location

	for i := 0; i < maxRetries; i++ {
		var err error
		switch idx.technique {
		case GeohashingTechnique:
			results, err = idx.searchGeohash(lat, lon, precision)
			if err != nil {
				return nil, err
			}
		case RTreeTechnique:
			results = searchRTree(idx.rtree, float64(lon), float64(lat), radius)
		case QuadtreeTechnique:
			results = idx.quadtree.SearchNearby(float64(lon), float64(lat), radius)
		default:
			return nil, ErrUnsupportedTechnique
		}

		if len(results) > 0 {
			idx.log.Debug("nearby search hit", "attempt", i+1, "results", len(results))
			return results, nil
		}

		idx.log.Debug("nearby search empty, widening", "attempt", i+1, "radius", radius, "precision", precision)
		radius *= 2
		if precision > 1 {
			precision--
		}
	}

	return nil, ErrNoResults
}

// searchGeohash collects the buckets that fall in the query cell or one of
// its eight neighbours at the given precision.
func (idx *Index) searchGeohash(lat, lon float32, precision uint8) ([]models.Location, error) {
	hash, err := geohash.Encode(lat, lon, precision)
	if err != nil {
		return nil, err
	}
	neighbors, err := geohash.Neighbors(hash)
	if err != nil {
		return nil, err
	}
	cells := make(map[string]struct{}, len(neighbors)+1)
	cells[hash] = struct{}{}
	for _, n := range neighbors {
		cells[n] = struct{}{}
	}

	var results []models.Location
	if precision == idx.precision {
		for cell := range cells {
			results = append(results, idx.buckets[cell]...)
		}
		return results, nil
	}
	for key, locs := range idx.buckets {
		if _, ok := cells[key[:precision]]; ok {
			results = append(results, locs...)
		}
	}
	return results, nil
}
