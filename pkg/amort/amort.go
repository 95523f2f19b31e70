// Package amort provides the amortization primitives underlying every loan
// cost calculation.
package amort

import (
	"math"

	"github.com/loanscope/loan-compare/pkg/constants"
)

// MonthlyPayment calculates the monthly principal-and-interest payment for a
// loan using the standard amortization formula.
func MonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if annualRatePercent == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}

// InterestPayment calculates the interest portion of a payment given the
// remaining principal.
func InterestPayment(remainingPrincipal, annualRatePercent float64) float64 {
	return remainingPrincipal * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// TotalInterest estimates the interest paid over the full nominal term with no
// extra payments. It walks the schedule rather than multiplying the payment by
// the term so the final short payment is handled correctly.
func TotalInterest(principal, annualRatePercent float64, termMonths int) float64 {
	schedule := BuildSchedule(principal, annualRatePercent, termMonths, Extra{})
	return schedule.TotalInterest
}
