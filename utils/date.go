package utils

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the formats seen in hand-curated line lists, tried in
// order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
	"1/2/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// missing markers reviewers leave in cells they could not fill
var missingTokens = map[string]struct{}{
	"":        {},
	"na":      {},
	"n/a":     {},
	"-":       {},
	"unknown": {},
}

// ParseDate turns one line-list cell into a calendar date. Missing markers
// return nil with no error; any other value must match a known layout.
func ParseDate(value string) (*time.Time, error) {
	v := strings.TrimSpace(value)
	if _, ok := missingTokens[strings.ToLower(v)]; ok {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", value)
}

// MustDate parses a layout "2006-01-02" date and panics on failure. Only
// for configuration defaults and tests.
func MustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if nil != err {
		panic(err)
	}
	return t
}

// DaysSince converts a date to fractional days since the epoch. Dates
// before the epoch come out negative.
func DaysSince(epoch time.Time, t time.Time) float64 {
	return t.Sub(epoch).Hours() / 24
}
