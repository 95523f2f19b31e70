// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/loanscope/loan-compare/pkg/constants"
)

const (
	// DateTimeLayout is the format used for schedule labels and is also the
	// output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}
