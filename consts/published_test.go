package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epireport/incubation-analysis/consts"
)

func TestPublishedEstimatesFor(t *testing.T) {
	for _, source := range consts.PublishedSources {
		rows, err := consts.PublishedEstimatesFor(source)
		assert.NoError(t, err)
		assert.NotEmpty(t, rows)
		for _, row := range rows {
			assert.Equal(t, source, row.Source, "wrong source")
			assert.True(t, row.Lo <= row.Value && row.Value <= row.Hi, "interval out of order")
		}
	}

	_, err := consts.PublishedEstimatesFor("nobody2020")
	assert.Error(t, err)
}

func TestAllPublishedEstimates(t *testing.T) {
	rows := consts.AllPublishedEstimates()
	assert.Equal(t, 8, len(rows))
	assert.Equal(t, "backer2020", rows[0].Source)
	assert.Equal(t, "linton2020", rows[len(rows)-1].Source)
}
