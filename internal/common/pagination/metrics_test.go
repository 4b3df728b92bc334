package pagination

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagedlist/pkg/pagedlist"
)

func histogramCount(t *testing.T) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, PageSize.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestGetPageRangeBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page int
		want string
	}{
		{1, "1-10"},
		{10, "1-10"},
		{11, "11-50"},
		{50, "11-50"},
		{51, "51-100"},
		{100, "51-100"},
		{101, "100+"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getPageRangeBucket(tt.page), "page %d", tt.page)
	}
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("200", "11-50"))

	RecordRequest(200, 12)
	RecordRequest(200, 50)

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("200", "11-50"))
	assert.Equal(t, before+2, after)
}

func TestRecordPage(t *testing.T) {
	outBefore := testutil.ToFloat64(OutOfRangeTotal)
	countBefore := histogramCount(t)

	inRange, err := pagedlist.NewMetadata(1, 10, 25)
	require.NoError(t, err)
	outOfRange, err := pagedlist.NewMetadata(5, 10, 25)
	require.NoError(t, err)
	empty, err := pagedlist.NewMetadata(1, 10, 0)
	require.NoError(t, err)

	RecordPage(inRange)
	RecordPage(outOfRange)
	RecordPage(empty)

	assert.Equal(t, outBefore+1, testutil.ToFloat64(OutOfRangeTotal), "only the page past the end counts as out of range")
	assert.Equal(t, countBefore+3, histogramCount(t))
}

func TestRecordError(t *testing.T) {
	before := testutil.ToFloat64(ErrorsTotal.WithLabelValues(ErrorTypeIndex))
	RecordError(ErrorTypeIndex)
	assert.Equal(t, before+1, testutil.ToFloat64(ErrorsTotal.WithLabelValues(ErrorTypeIndex)))
}

func TestRecordDuration(t *testing.T) {
	RecordDuration(OperationBuild, 0.002)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(DurationSeconds), 1)
}
