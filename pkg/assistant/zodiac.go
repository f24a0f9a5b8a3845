package assistant

import (
	"errors"
	"time"
)

// ErrInvalidBirthdate rejects birthdates that are not ISO 8601 dates.
var ErrInvalidBirthdate = errors.New("assistant: birthdate must be YYYY-MM-DD")

type zodiacRange struct {
	sign       string
	month, day int // range start, inclusive
}

// Western zodiac boundaries, keyed by range start.
var zodiacRanges = []zodiacRange{
	{"Capricorn", 1, 1},
	{"Aquarius", 1, 20},
	{"Pisces", 2, 19},
	{"Aries", 3, 21},
	{"Taurus", 4, 20},
	{"Gemini", 5, 21},
	{"Cancer", 6, 21},
	{"Leo", 7, 23},
	{"Virgo", 8, 23},
	{"Libra", 9, 23},
	{"Scorpio", 10, 23},
	{"Sagittarius", 11, 22},
	{"Capricorn", 12, 22},
}

// ZodiacSign derives the western zodiac sign from an ISO 8601
// birthdate.
func ZodiacSign(birthdate string) (string, error) {
	t, err := time.Parse("2006-01-02", birthdate)
	if err != nil {
		return "", ErrInvalidBirthdate
	}

	month, day := int(t.Month()), t.Day()
	sign := zodiacRanges[0].sign
	for _, r := range zodiacRanges {
		if month > r.month || (month == r.month && day >= r.day) {
			sign = r.sign
		}
	}
	return sign, nil
}
