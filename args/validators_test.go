package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eucaby/reqparse"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"user.name+tag@sub.domain.com",
		"USER@EXAMPLE.ORG",
		"a_b%c@d-e.io",
	}
	invalid := []string{
		"not-an-email",
		"@domain.com",
		"user@domain",
		"user@domain.toolong",
		"user name@domain.com",
		"",
	}

	for _, s := range valid {
		t.Run("Valid_"+s, func(t *testing.T) {
			got, err := Email.Coerce(s)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
	for _, s := range invalid {
		t.Run("Invalid_"+s, func(t *testing.T) {
			_, err := Email.Coerce(s)
			require.Error(t, err)
			assert.Equal(t, InvalidEmail, err.Error())
			assert.True(t, reqparse.IsValidationError(err))
		})
	}
}

func TestLatLng(t *testing.T) {
	valid := []string{"37.4,-122.1", "0,0", "-1.,2", "52.52,13.405"}
	invalid := []string{"37.4", "abc,123", "37.4,-122.1,", " 1,2", "1, 2", ""}

	for _, s := range valid {
		t.Run("Valid_"+s, func(t *testing.T) {
			got, err := LatLng.Coerce(s)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
	for _, s := range invalid {
		t.Run("Invalid_"+s, func(t *testing.T) {
			_, err := LatLng.Coerce(s)
			require.Error(t, err)
			assert.Equal(t, MsgLatLngFormat, err.Error())
		})
	}
}

func TestPoint(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		got, err := Coordinates.Coerce("37.4,-122.1")
		require.NoError(t, err)
		assert.Equal(t, Point{Lat: 37.4, Lng: -122.1}, got)
		assert.Equal(t, "37.4,-122.1", got.(Point).String())
	})

	t.Run("Bounds", func(t *testing.T) {
		p, err := ParsePoint("-90,180")
		require.NoError(t, err)
		assert.Equal(t, Point{Lat: -90, Lng: 180}, p)
	})

	t.Run("LatitudeOutOfRange", func(t *testing.T) {
		_, err := Coordinates.Coerce("91,0")
		require.Error(t, err)
		assert.Equal(t, MsgPointRange, err.Error())
	})

	t.Run("LongitudeOutOfRange", func(t *testing.T) {
		_, err := Coordinates.Coerce("0,-180.5")
		require.Error(t, err)
		assert.Equal(t, MsgPointRange, err.Error())
	})

	t.Run("BadFormat", func(t *testing.T) {
		_, err := Coordinates.Coerce("abc,123")
		require.Error(t, err)
		assert.Equal(t, MsgLatLngFormat, err.Error())
	})
}
