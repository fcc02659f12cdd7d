package trip

import (
	"fmt"
	"time"
)

// CheckStay requires the end date to be strictly after the start date
func CheckStay(from time.Time, to time.Time) error {
	if !to.After(from) {
		return fmt.Errorf("%w: return %s is not after departure %s", ErrInvalidDateRange, to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	return nil
}

// CheckDays allows a single day range, an end date before the start is rejected
func CheckDays(from time.Time, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalidDateRange, to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	return nil
}
