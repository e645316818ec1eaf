package linelist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epireport/incubation-analysis/utils"
)

func TestLoadLineList(t *testing.T) {
	records, skipped, err := Load("testdata/linelist.csv")
	require.NoError(t, err)

	// c004 has a free-text onset date, one row has no id and c010 is
	// truncated
	assert.Equal(t, 3, skipped)
	require.Equal(t, 7, len(records))

	first := records[0]
	assert.Equal(t, "c001", first.ID)
	require.NotNil(t, first.ExposureLeft)
	assert.True(t, utils.MustDate("2019-12-29").Equal(*first.ExposureLeft))
	require.NotNil(t, first.OnsetRight)
	assert.True(t, utils.MustDate("2020-01-07").Equal(*first.OnsetRight))
	assert.Equal(t, "Wuhan", first.Origin)
	assert.Equal(t, "Japan", first.Destination)
	assert.Equal(t, 2, first.Reviewers)
	assert.True(t, first.HasFeverOnset())

	second := records[1]
	assert.Equal(t, "c002", second.ID)
	assert.Nil(t, second.ExposureLeft)
	assert.False(t, second.HasFeverOnset())
	assert.Equal(t, 3, second.Reviewers)
}

func TestLoadNormalizesOrigins(t *testing.T) {
	records, _, err := Load("testdata/linelist.csv")
	require.NoError(t, err)

	origins := make(map[string]string, len(records))
	for _, r := range records {
		origins[r.ID] = r.Origin
	}
	// "Wuhan, China" and "wuhan" collapse to the canonical label
	assert.Equal(t, "Wuhan", origins["c002"])
	assert.Equal(t, "Wuhan", origins["c005"])
	assert.Equal(t, "Hubei", origins["c003"])
	assert.Equal(t, "Singapore", origins["c009"])
}

func TestReadSlashDates(t *testing.T) {
	records, skipped, err := Load("testdata/linelist.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, skipped)

	var found bool
	for _, r := range records {
		if r.ID != "c005" {
			continue
		}
		found = true
		require.NotNil(t, r.ExposureLeft)
		assert.True(t, utils.MustDate("2020-01-02").Equal(*r.ExposureLeft))
		require.NotNil(t, r.OnsetLeft)
		assert.True(t, utils.MustDate("2020-01-12").Equal(*r.OnsetLeft))
	}
	assert.True(t, found, "c005 not loaded")
}

func TestReadRequiresIDColumn(t *testing.T) {
	_, _, err := Read(strings.NewReader("exposure_left,exposure_right\n2020-01-01,2020-01-02\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no id column")
}

func TestReadDuplicateColumn(t *testing.T) {
	_, _, err := Read(strings.NewReader("id,el,exposure_left\nc1,2020-01-01,2020-01-02\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column")
}

func TestReadIgnoresUnknownColumns(t *testing.T) {
	input := "id,onset_left,comment\nc1,2020-01-05,traveled by train\n"
	records, skipped, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Equal(t, 1, len(records))
	assert.Equal(t, "c1", records[0].ID)
	require.NotNil(t, records[0].OnsetLeft)
	assert.Nil(t, records[0].ExposureLeft)
}

func TestReadBadReviewerCount(t *testing.T) {
	input := "id,reviewers\nc1,two\nc2,2\n"
	records, skipped, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Equal(t, 1, len(records))
	assert.Equal(t, "c2", records[0].ID)
	assert.Equal(t, 2, records[0].Reviewers)
}
