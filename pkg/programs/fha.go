// Package programs implements the loan-program fee calculators: FHA mortgage
// insurance premiums, VA funding fees, USDA guarantee fees, conventional PMI
// estimation, and ARM rate projection.
package programs

import "github.com/loanscope/loan-compare/pkg/constants"

// FHAUpfrontMIP calculates the upfront FHA mortgage insurance premium.
func FHAUpfrontMIP(loanAmount, upfrontRatePercent float64) float64 {
	return loanAmount * upfrontRatePercent / constants.PercentageMultiplier
}

// FHAMonthlyMIP calculates the monthly FHA mortgage insurance premium from the
// annual rate.
func FHAMonthlyMIP(loanAmount, annualRatePercent float64) float64 {
	return loanAmount * annualRatePercent / constants.PercentageMultiplier / constants.MonthsPerYear
}
