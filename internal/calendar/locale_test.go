package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		tag     string
		want    string
		matched bool
	}{
		{"en", "en", true},
		{"EN", "en", true},
		{"nl", "nl", true},
		{"nl-BE", "nl", true},
		{"en-GB", "en", true},
		{"fr", "en", false},
		{"af", "en", false},
		{"fy", "en", false},
		{"und", "en", false},
		{"", "en", false},
		{"not a tag!", "en", false},
	}
	for _, tc := range cases {
		loc, ok := ResolveLocale(tc.tag)
		assert.Equal(t, tc.want, loc.Tag, "tag %q", tc.tag)
		assert.Equal(t, tc.matched, ok, "tag %q", tc.tag)
	}
}

func TestShortDateStripsLeadingZero(t *testing.T) {
	d := date(2019, time.March, 4)
	assert.Equal(t, "Mar 4", English.ShortDate(d))
	assert.Equal(t, "mrt 4", Dutch.ShortDate(d))
	assert.Equal(t, "Dec 31", English.ShortDate(date(2018, time.December, 31)))
}

func TestZeroLocaleFallsBackToEnglish(t *testing.T) {
	var loc Locale
	assert.Equal(t, "May", loc.Month(time.May))
}
