package calendar

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Locale formats dates for one roster language.
type Locale struct {
	Tag    string
	months [12]string
}

var (
	English = Locale{
		Tag:    "en",
		months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	}
	Dutch = Locale{
		Tag:    "nl",
		months: [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
	}

	supportedLocales = []Locale{English, Dutch}
)

// ResolveLocale picks the supported locale for tag by its base language, so
// regional variants such as nl-BE resolve but related languages do not. The
// boolean is false when English was used as a fallback.
func ResolveLocale(tag string) (Locale, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return English, false
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return English, false
	}
	base, confidence := parsed.Base()
	if confidence < language.High {
		return English, false
	}
	for _, loc := range supportedLocales {
		if base.String() == loc.Tag {
			return loc, true
		}
	}
	return English, false
}

// Month returns the abbreviated month name.
func (l Locale) Month(m time.Month) string {
	if l.months[0] == "" {
		return English.months[m-1]
	}
	return l.months[m-1]
}

// ShortDate renders t as "<month> <day>" with no leading zero on the day,
// e.g. "Jan 7".
func (l Locale) ShortDate(t time.Time) string {
	return l.Month(t.Month()) + " " + strconv.Itoa(t.Day())
}
