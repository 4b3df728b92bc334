package pagination

import "pagedlist/pkg/pagedlist"

// PaginationStrategy translates request parameters into a data source query and
// turns the query's total count back into page metadata.
type PaginationStrategy interface {
	// CalculateQuery returns the query window for the requested page.
	CalculateQuery(params Params) QueryParams

	// BuildMetadata derives page metadata once the total count is known.
	BuildMetadata(params Params, total int) (pagedlist.Metadata, error)
}

// QueryParams is the LIMIT/OFFSET window a data source reads for a page.
type QueryParams struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// OffsetStrategy implements traditional LIMIT/OFFSET pagination.
type OffsetStrategy struct{}

var _ PaginationStrategy = OffsetStrategy{}

// CalculateQuery calculates offset and limit for offset-based pagination.
func (s OffsetStrategy) CalculateQuery(params Params) QueryParams {
	return QueryParams{
		Offset: CalculateOffset(params.PageNumber, params.PageSize),
		Limit:  params.PageSize,
	}
}

// BuildMetadata constructs page metadata for offset-based pagination.
func (s OffsetStrategy) BuildMetadata(params Params, total int) (pagedlist.Metadata, error) {
	return pagedlist.NewMetadata(params.PageNumber, params.PageSize, total)
}
