package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZero(t *testing.T) {
	p := Point{Lat: 50.8503, Lon: 4.3517}
	assert.InDelta(t, 0.0, Distance(p, p), 1e-9)
}

func TestDistanceKnownOneDegree(t *testing.T) {
	p1 := Point{Lat: 0, Lon: 0}
	p2 := Point{Lat: 1, Lon: 0}
	assert.InDelta(t, 111195.0, Distance(p1, p2), 200)
}

func TestInCircle(t *testing.T) {
	center := Point{Lat: 50.8467, Lon: 4.3525} // Grand-Place
	near := Point{Lat: 50.8470, Lon: 4.3527}
	far := Point{Lat: 50.9000, Lon: 4.5000}

	assert.True(t, InCircle(center, near, 150))
	assert.False(t, InCircle(center, far, 150))
}

func TestBoundingBoxContains(t *testing.T) {
	bb := BoundingBox{MinLat: 50.76, MaxLat: 50.91, MinLng: 4.22, MaxLng: 4.48}
	assert.True(t, bb.Contains(50.85, 4.35))
	assert.False(t, bb.Contains(51.0, 4.35))
	assert.False(t, bb.Contains(50.85, 5.0))
}

func TestNearestCentroid(t *testing.T) {
	centroids := []Point{
		{Lat: 50.8503, Lon: 4.3517}, // Brussels center
		{Lat: 50.8333, Lon: 4.3667}, // Ixelles-ish
	}
	idx, dist := NearestCentroid(Point{Lat: 50.8330, Lon: 4.3660}, centroids)
	assert.Equal(t, 1, idx)
	assert.Greater(t, dist, 0.0)
}
