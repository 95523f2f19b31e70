// Package apr solves for the annual percentage rate of a loan: the rate that
// equates the amount financed to the discounted stream of monthly payments.
package apr

import (
	"math"

	"github.com/loanscope/loan-compare/pkg/constants"
	"github.com/loanscope/loan-compare/pkg/mathutil"
)

// PresentValue returns the present value of a level monthly payment stream
// discounted at the given annual rate (decimal form, e.g. 0.065).
func PresentValue(monthlyPayment, annualRate float64, numPayments int) float64 {
	monthlyRate := annualRate / constants.MonthsPerYear
	if monthlyRate == 0 {
		return monthlyPayment * float64(numPayments)
	}
	return monthlyPayment * (1 - math.Pow(1+monthlyRate, -float64(numPayments))) / monthlyRate
}

// presentValueDerivative is the analytic derivative of PresentValue with
// respect to the annual rate.
func presentValueDerivative(monthlyPayment, annualRate float64, numPayments int) float64 {
	r := annualRate / constants.MonthsPerYear
	n := float64(numPayments)
	numerator := n*math.Pow(1+r, -n-1)*r - (1 - math.Pow(1+r, -n))
	return monthlyPayment * numerator / (r * r) / constants.MonthsPerYear
}

// Solve computes the APR in annual percent via Newton-Raphson. The amount
// financed is the loan amount less prepaid finance charges. Degenerate inputs
// return 0 as a documented sentinel rather than iterating.
func Solve(monthlyPayment, loanAmount, financeCharges float64, numPayments int) float64 {
	amountFinanced := loanAmount - financeCharges
	if amountFinanced <= 0 || monthlyPayment <= 0 || numPayments <= 0 {
		return 0
	}

	// Initial guess from the undiscounted payment total, clamped into the
	// solver's rate window.
	rate := monthlyPayment*float64(numPayments)/amountFinanced - 1
	rate = mathutil.Clamp(rate, constants.APRMinRate, constants.APRMaxRate)

	for i := 0; i < constants.APRMaxIterations; i++ {
		diff := PresentValue(monthlyPayment, rate, numPayments) - amountFinanced
		if math.Abs(diff) < constants.APRTolerance {
			break
		}

		derivative := presentValueDerivative(monthlyPayment, rate, numPayments)
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			break
		}

		// Clamp each step to keep the iteration from diverging.
		rate = mathutil.Clamp(rate-diff/derivative, constants.APRMinRate, constants.APRMaxRate)
	}

	return rate * constants.PercentageMultiplier
}
