package programs

import "github.com/loanscope/loan-compare/pkg/constants"

// USDAUpfrontFee calculates the upfront USDA guarantee fee.
func USDAUpfrontFee(loanAmount, upfrontRatePercent float64) float64 {
	return loanAmount * upfrontRatePercent / constants.PercentageMultiplier
}

// USDAMonthlyFee calculates the monthly USDA guarantee fee from the annual rate.
func USDAMonthlyFee(loanAmount, annualRatePercent float64) float64 {
	return loanAmount * annualRatePercent / constants.PercentageMultiplier / constants.MonthsPerYear
}
