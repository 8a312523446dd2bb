package kernel_test

import (
	"testing"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(19.0760, 72.8777)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, 19.0760, point.Latitude(), 0.0001)
		assert.InDelta(t, 72.8777, point.Longitude(), 0.0001)
	})

	t.Run("should reject out of range coordinates", func(t *testing.T) {
		tests := []struct {
			name string
			lat  float64
			lon  float64
		}{
			{"latitude too low", -90.5, 0},
			{"latitude too high", 90.5, 0},
			{"longitude too low", 0, -180.5},
			{"longitude too high", 0, 180.5},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lon)
				require.Error(t, err)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("should compute haversine distance", func(t *testing.T) {
		mumbai, _ := kernel.NewGeoPoint(19.0760, 72.8777)
		delhi, _ := kernel.NewGeoPoint(28.7041, 77.1025)

		km, err := mumbai.DistanceKm(delhi)

		require.NoError(t, err)
		assert.InDelta(t, 1153, km, 15)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(12.9716, 77.5946)
		b, _ := kernel.NewGeoPoint(13.0827, 80.2707)

		ab, err := a.DistanceKm(b)
		require.NoError(t, err)
		ba, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 0.0001)
	})

	t.Run("distance to itself is zero", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(12.9716, 77.5946)

		km, err := a.DistanceKm(a)

		require.NoError(t, err)
		assert.InDelta(t, 0, km, 0.0001)
	})

	t.Run("should fail for unconstructed point", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(12.9716, 77.5946)
		var b kernel.GeoPoint

		_, err := a.DistanceKm(b)

		require.Error(t, err)
	})
}
