package geoindex

import (
	"fmt"
	"testing"

	"geohash-codec/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadtreeSubdivides(t *testing.T) {
	qt := NewQuadtree(WorldBounds)
	for i := 0; i < 10; i++ {
		ok := qt.Insert(models.Location{ID: fmt.Sprint(i), Latitude: float32(i), Longitude: float32(i)})
		require.True(t, ok)
	}
	require.NotNil(t, qt.Root.Children[0])

	got := qt.SearchNearby(0, 0, 1.5)
	assert.Len(t, got, 2)
}

func TestQuadtreeDuplicatePointsStopAtMaxDepth(t *testing.T) {
	qt := NewQuadtree(WorldBounds)
	for i := 0; i < 50; i++ {
		require.True(t, qt.Insert(models.Location{ID: fmt.Sprint(i), Latitude: 10, Longitude: 20}))
	}
	assert.Len(t, qt.SearchNearby(20, 10, 0.001), 50)
}

func TestQuadtreeRejectsOutside(t *testing.T) {
	qt := NewQuadtree(Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1})
	assert.False(t, qt.Insert(models.Location{Latitude: 2, Longitude: 2}))
}

func TestHaversine(t *testing.T) {
	// London to Paris is roughly 344 km.
	d := Haversine(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 343_500, d, 1_500)
	assert.Zero(t, Haversine(10, 10, 10, 10))
}
