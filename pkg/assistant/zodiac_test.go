package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZodiacSign(t *testing.T) {
	cases := []struct {
		birthdate string
		sign      string
	}{
		{"1990-01-01", "Capricorn"},
		{"1990-01-19", "Capricorn"},
		{"1990-01-20", "Aquarius"},
		{"1990-02-19", "Pisces"},
		{"1990-03-21", "Aries"},
		{"1990-04-20", "Taurus"},
		{"1990-05-21", "Gemini"},
		{"1990-06-21", "Cancer"},
		{"1990-07-23", "Leo"},
		{"1990-08-23", "Virgo"},
		{"1990-09-23", "Libra"},
		{"1990-10-23", "Scorpio"},
		{"1990-11-22", "Sagittarius"},
		{"1990-12-22", "Capricorn"},
		{"1990-12-31", "Capricorn"},
	}

	for _, tc := range cases {
		sign, err := ZodiacSign(tc.birthdate)
		require.NoError(t, err, tc.birthdate)
		assert.Equal(t, tc.sign, sign, tc.birthdate)
	}
}

func TestZodiacSignRejectsBadDates(t *testing.T) {
	for _, birthdate := range []string{"", "1990", "01-01-1990", "1990-13-01", "yesterday"} {
		_, err := ZodiacSign(birthdate)
		assert.ErrorIs(t, err, ErrInvalidBirthdate, birthdate)
	}
}
