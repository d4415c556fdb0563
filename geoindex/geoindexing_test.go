package geoindex_test

import (
	"io"
	"log/slog"
	"testing"

	"geohash-codec/geohash"
	"geohash-codec/geoindex"
	"geohash-codec/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var techniques = []geoindex.Technique{
	geoindex.GeohashingTechnique,
	geoindex.RTreeTechnique,
	geoindex.QuadtreeTechnique,
}

var london = []models.Location{
	{ID: "liverpool-street", Latitude: 51.5178, Longitude: -0.0823},
	{ID: "old-street", Latitude: 51.5263, Longitude: -0.0878},
	{ID: "moorgate", Latitude: 51.5186, Longitude: -0.0886},
	{ID: "heathrow", Latitude: 51.4700, Longitude: -0.4543},
}

func newIndex(t *testing.T, technique geoindex.Technique) *geoindex.Index {
	t.Helper()
	idx, err := geoindex.New(geoindex.Options{
		Technique: technique,
		Precision: 6,
		Radius:    0.01,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	for _, loc := range london {
		_, err := idx.Insert(loc)
		require.NoError(t, err)
	}
	return idx
}

func ids(locs []models.Location) []string {
	out := make([]string, 0, len(locs))
	for _, l := range locs {
		out = append(out, l.ID)
	}
	return out
}

func TestInsertTagsGeohash(t *testing.T) {
	idx, err := geoindex.New(geoindex.Options{})
	require.NoError(t, err)
	assert.Equal(t, geoindex.GeohashingTechnique, idx.Technique())

	loc, err := idx.Insert(models.Location{ID: "a", Latitude: -0.08635, Longitude: 51.52562})
	require.NoError(t, err)
	assert.Equal(t, "mpuxs2rbfp1y", loc.Geohash)
	assert.Equal(t, 1, idx.Len())
}

func TestInsertRejectsInvalidCoordinate(t *testing.T) {
	for _, technique := range techniques {
		idx, err := geoindex.New(geoindex.Options{Technique: technique})
		require.NoError(t, err)
		_, err = idx.Insert(models.Location{ID: "bad", Latitude: 91})
		require.ErrorIs(t, err, geohash.ErrInvalidCoordinate)
		assert.Zero(t, idx.Len())
	}
}

func TestSearchNearbyFindsCloseLocations(t *testing.T) {
	for _, technique := range techniques {
		t.Run(string(technique), func(t *testing.T) {
			idx := newIndex(t, technique)
			got, err := idx.SearchNearbyWithRetries(51.5180, -0.0850, 1)
			require.NoError(t, err)
			assert.Contains(t, ids(got), "liverpool-street")
			assert.NotContains(t, ids(got), "heathrow")
		})
	}
}

func TestSearchNearbyWidensOnRetry(t *testing.T) {
	for _, technique := range techniques {
		t.Run(string(technique), func(t *testing.T) {
			idx := newIndex(t, technique)

			// Reading is far enough that the first attempt comes back empty.
			_, err := idx.SearchNearbyWithRetries(51.4543, -0.9781, 1)
			require.ErrorIs(t, err, geoindex.ErrNoResults)

			got, err := idx.SearchNearbyWithRetries(51.4543, -0.9781, 8)
			require.NoError(t, err)
			assert.Contains(t, ids(got), "heathrow")
		})
	}
}

func TestSearchNearbyGeohashingFullPrecision(t *testing.T) {
	idx, err := geoindex.New(geoindex.Options{
		Technique: geoindex.GeohashingTechnique,
		Precision: geohash.MaxPrecision,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	// One cell north of the query cell 88hcdwxeeu01.
	loc, err := idx.Insert(models.Location{ID: "north", Latitude: 0.30000004172325134, Longitude: -150.7})
	require.NoError(t, err)
	require.Equal(t, "88hcdwxeeu04", loc.Geohash)

	got, err := idx.SearchNearbyWithRetries(0.3, -150.7, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"north"}, ids(got))
}

func TestSearchNearbyInvalidQuery(t *testing.T) {
	idx := newIndex(t, geoindex.QuadtreeTechnique)
	_, err := idx.SearchNearbyWithRetries(0, 200, 3)
	require.ErrorIs(t, err, geohash.ErrInvalidCoordinate)
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := geoindex.New(geoindex.Options{Technique: "kdtree"})
	require.ErrorIs(t, err, geoindex.ErrUnsupportedTechnique)

	_, err = geoindex.New(geoindex.Options{Precision: 13})
	require.ErrorIs(t, err, geohash.ErrInvalidPrecision)
}

func TestParseTechnique(t *testing.T) {
	got, err := geoindex.ParseTechnique(" RTree ")
	require.NoError(t, err)
	assert.Equal(t, geoindex.RTreeTechnique, got)

	_, err = geoindex.ParseTechnique("h3")
	assert.ErrorIs(t, err, geoindex.ErrUnsupportedTechnique)
}
