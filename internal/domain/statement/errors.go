package statement

import "errors"

var (
	ErrCacheMiss     = errors.New("no cached statement for this period")
	ErrInvalidPeriod = errors.New("period start must not be after period end")
)
