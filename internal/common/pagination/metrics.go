package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pagedlist/pkg/pagedlist"
)

// Error types used as the "type" label of ErrorsTotal.
const (
	ErrorTypeValidation = "validation"
	ErrorTypeIndex      = "index"
	ErrorTypeInternal   = "internal"
)

// Operations used as the "operation" label of DurationSeconds.
const (
	OperationBuild   = "build"
	OperationHandler = "handler"
)

var (
	// RequestsTotal counts the total number of pagination requests.
	// Labels: status (HTTP status code), page_range (page bucket: 1-10, 11-50, etc.)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagedlist_requests_total",
			Help: "Total number of pagination requests",
		},
		[]string{"status", "page_range"},
	)

	// DurationSeconds tracks operation duration distribution.
	// Labels: operation (build: constructing the page or its metadata,
	// handler: the whole request including decoding and encoding)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pagedlist_duration_seconds",
			Help:    "Pagination operation duration distribution",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"operation"},
	)

	// PageSize tracks the distribution of requested page sizes.
	PageSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pagedlist_page_size",
			Help:    "Requested page sizes",
			Buckets: []float64{1, 5, 10, 20, 50, 100, 500},
		},
	)

	// OutOfRangeTotal counts pages requested beyond the last page of their collection.
	OutOfRangeTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagedlist_out_of_range_pages_total",
			Help: "Total number of pages requested beyond the page count",
		},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (validation, index, internal)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagedlist_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a pagination request metric.
func RecordRequest(statusCode int, page int) {
	RequestsTotal.WithLabelValues(
		strconv.Itoa(statusCode),
		getPageRangeBucket(page),
	).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// RecordPage records the shape of a successfully built page.
func RecordPage(m pagedlist.MetadataReader) {
	PageSize.Observe(float64(m.PageSize()))
	if m.PageCount() > 0 && m.PageNumber() > m.PageCount() {
		OutOfRangeTotal.Inc()
	}
}

// RecordError records an error metric.
// errorType should be one of the ErrorType constants.
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// getPageRangeBucket returns the page range bucket for a given page number.
func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
