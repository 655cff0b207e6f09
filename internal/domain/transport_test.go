package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransportCategory(t *testing.T) {
	tests := []struct {
		in   string
		want TransportCategory
	}{
		{"car", Car},
		{"  Car ", Car},
		{"DRONE", Drone},
		{"자동차", Car},
		{"드론", Drone},
	}

	for _, tt := range tests {
		got, err := ParseTransportCategory(tt.in)
		require.NoError(t, err, "ParseTransportCategory(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseTransportCategory(%q)", tt.in)
	}
}

func TestParseTransportCategoryUnknown(t *testing.T) {
	for _, in := range []string{"", "bus", "cars"} {
		_, err := ParseTransportCategory(in)
		require.ErrorIs(t, err, ErrInvalidInput, "ParseTransportCategory(%q)", in)

		ie, ok := AsInputError(err)
		require.True(t, ok)
		assert.Equal(t, InvalidCategory, ie.Kind, "ParseTransportCategory(%q)", in)
	}
}

func TestCategorySpeeds(t *testing.T) {
	s, ok := Car.Speed()
	assert.True(t, ok)
	assert.Equal(t, 60, s)

	s, ok = Drone.Speed()
	assert.True(t, ok)
	assert.Equal(t, 80, s)

	_, ok = TransportCategory("boat").Speed()
	assert.False(t, ok)

	for _, c := range Categories() {
		assert.True(t, c.Valid(), "listed category %q", c)
	}
}
