package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, Distance(41.3851, 2.1734, 41.3851, 2.1734))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := Distance(40.7128, -74.0060, 34.0522, -118.2437)
		d2 := Distance(34.0522, -118.2437, 40.7128, -74.0060)
		assert.Equal(t, d1, d2)
	})

	t.Run("known distance NYC to LA", func(t *testing.T) {
		d := Distance(40.7128, -74.0060, 34.0522, -118.2437)
		// Great-circle distance is roughly 3936 km
		assert.InDelta(t, 3936, d, 10)
	})

	t.Run("short distance", func(t *testing.T) {
		// Two points ~1.11 km apart along a meridian
		d := Distance(41.3851, 2.1734, 41.3951, 2.1734)
		assert.InDelta(t, 1.11, d, 0.01)
	})
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km       float64
		expected string
	}{
		{0.5, "500m"},
		{0.05, "50m"},
		{0.999, "999m"},
		{1.0, "1.0km"},
		{12.34, "12.3km"},
		{5.55, "5.5km"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDistance(tt.km))
	}
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(0, 0))
	assert.True(t, ValidateCoordinates(90, 180))
	assert.True(t, ValidateCoordinates(-90, -180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, -180.5))
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, ValidateRadius(5))
	assert.True(t, ValidateRadius(0.1))
	assert.True(t, ValidateRadius(100))
	assert.False(t, ValidateRadius(0))
	assert.False(t, ValidateRadius(101))
}
