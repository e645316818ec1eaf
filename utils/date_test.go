package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateLayouts(t *testing.T) {
	want := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	for _, value := range []string{
		"2020-01-15",
		"2020-1-15",
		"2020/01/15",
		"1/15/2020",
		"15 Jan 2020",
		"Jan 15, 2020",
	} {
		got, err := ParseDate(value)
		assert.NoError(t, err, value)
		assert.NotNil(t, got, value)
		assert.True(t, want.Equal(*got), value)
	}
}

func TestParseDateMissing(t *testing.T) {
	for _, value := range []string{"", "  ", "NA", "n/a", "-", "Unknown"} {
		got, err := ParseDate(value)
		assert.NoError(t, err, value)
		assert.Nil(t, got, value)
	}
}

func TestParseDateInvalid(t *testing.T) {
	got, err := ParseDate("mid January")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestDaysSince(t *testing.T) {
	epoch := MustDate("2019-12-01")
	assert.Equal(t, 0.0, DaysSince(epoch, epoch))
	assert.Equal(t, 31.0, DaysSince(epoch, MustDate("2020-01-01")))
	assert.Equal(t, -1.0, DaysSince(epoch, MustDate("2019-11-30")))
}
