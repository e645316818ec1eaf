package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlaceAlias(t *testing.T) {
	assert.Equal(t, "Wuhan", NormalizePlace("wuhan"))
	assert.Equal(t, "Wuhan", NormalizePlace("Wuhan, China"))
	assert.Equal(t, "Wuhan", NormalizePlace("China (Wuhan)"))
}

func TestNormalizePlaceDestinations(t *testing.T) {
	assert.Equal(t, "Japan", NormalizePlace("JAPAN"))
	assert.Equal(t, "South Korea", NormalizePlace("Korea, South"))
	assert.Equal(t, "United States", NormalizePlace("USA"))
}

func TestNormalizePlacePassthrough(t *testing.T) {
	assert.Equal(t, "Hong Kong", NormalizePlace(" Hong Kong "))
	assert.Equal(t, "China", NormalizePlace("China"))
	assert.Equal(t, "", NormalizePlace("  "))
}
