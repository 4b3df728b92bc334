package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

// ValidatePositiveDuration reports an error when d is zero or negative.
// Server timeouts use it: a zero read or write timeout would disable the limit.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be a positive duration, got %v", d)
	}
	return nil
}

// ValidatePositiveDurations checks every named duration and joins the
// failures in name order, each prefixed with its name.
//
// Example:
//
//	err := ValidatePositiveDurations(map[string]time.Duration{
//	    "read_timeout":  cfg.ReadTimeout,
//	    "write_timeout": cfg.WriteTimeout,
//	})
func ValidatePositiveDurations(named map[string]time.Duration) error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(named)) {
		if err := ValidatePositiveDuration(named[name]); err != nil {
			errs = append(errs, fmt.Errorf("%s %w", name, err))
		}
	}
	return errors.Join(errs...)
}
