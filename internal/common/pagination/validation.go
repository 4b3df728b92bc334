package pagination

import (
	"fmt"

	"pagedlist/pkg/pagedlist"
)

// Validate validates pagination parameters against the configuration.
// Returns an error wrapping pagedlist.ErrInvalidArgument if:
//   - page number is less than 1
//   - page size is less than 1 or greater than config.MaxPageSize
func (p Params) Validate(config Config) error {
	if p.PageNumber < 1 {
		return fmt.Errorf("page must be a positive integer: %w", pagedlist.ErrInvalidArgument)
	}
	if p.PageSize < 1 || p.PageSize > config.MaxPageSize {
		return fmt.Errorf("page_size must be between 1 and %d: %w", config.MaxPageSize, pagedlist.ErrInvalidArgument)
	}
	return nil
}
