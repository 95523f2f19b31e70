// Package hecm sizes Home Equity Conversion Mortgages: principal limits,
// upfront costs, disbursement options, and growth projections.
package hecm

import (
	"fmt"

	"github.com/loanscope/loan-compare/pkg/amort"
	"github.com/loanscope/loan-compare/pkg/constants"
	"github.com/loanscope/loan-compare/pkg/mathutil"
)

// Disbursement selects how the net principal limit is taken.
type Disbursement string

const (
	LumpSum        Disbursement = "lumpsum"
	LineOfCredit   Disbursement = "lineofcredit"
	Tenure         Disbursement = "tenure"
	Term           Disbursement = "term"
	ModifiedTenure Disbursement = "modifiedtenure"
	ModifiedTerm   Disbursement = "modifiedterm"
)

// Scenario is the input record for HECM sizing. The principal limit factor is
// supplied by the caller; actuarial PLF tables are outside this package.
type Scenario struct {
	HomeValue              float64
	FHALimit               float64
	PLF                    float64 // percent of max claim amount
	NoteRate               float64 // annual percent
	LenderCredit           float64
	ThirdPartyCosts        float64
	ExistingMortgagePayoff float64
	Disbursement           Disbursement
	TermYears              int // for term and modified-term disbursements
	ProjectionYears        int
}

// YearProjection is one year of compounded line-of-credit and balance growth.
type YearProjection struct {
	Year         int
	LineOfCredit float64
	LoanBalance  float64
}

// Result is the computed HECM sizing. CashToBorrower, LineOfCredit, and
// MonthlyPayment are mutually exclusive by disbursement type except for the
// modified types, which split between a line of credit and a monthly payment.
type Result struct {
	MaxClaimAmount          float64
	PrincipalLimit          float64
	InitialMIP              float64
	OriginationFee          float64 // net of lender credit, floored at 0 for display
	OriginationFeeUnclamped float64
	NetPrincipalLimit       float64
	CashToBorrower          float64
	LineOfCredit            float64
	MonthlyPayment          float64
	GrowthRate              float64 // annual percent applied to LOC and balance
	Projections             []YearProjection
}

// OriginationFee computes the tiered HECM origination fee for a max claim
// amount: 2% with a $2500 floor up to $200k, then $4000 plus 1% of the
// excess, capped at $6000.
func OriginationFee(maxClaimAmount float64) float64 {
	var fee float64
	if maxClaimAmount <= 200000 {
		fee = mathutil.Max(constants.HECMOriginationFeeFloor, maxClaimAmount*0.02)
	} else {
		fee = 4000 + (maxClaimAmount-200000)*0.01
	}
	return mathutil.Min(fee, constants.HECMOriginationFeeCap)
}

// Compute sizes the HECM described by the scenario.
func Compute(s Scenario) (Result, error) {
	if s.HomeValue <= 0 {
		return Result{}, fmt.Errorf("home value must be positive, got %.2f", s.HomeValue)
	}
	if s.FHALimit <= 0 {
		return Result{}, fmt.Errorf("FHA lending limit must be positive, got %.2f", s.FHALimit)
	}
	if s.PLF <= 0 || s.PLF > 100 {
		return Result{}, fmt.Errorf("principal limit factor must be in (0, 100], got %.2f", s.PLF)
	}

	var r Result
	r.MaxClaimAmount = mathutil.Min(s.HomeValue, s.FHALimit)
	r.PrincipalLimit = r.MaxClaimAmount * s.PLF / constants.PercentageMultiplier
	r.InitialMIP = r.MaxClaimAmount * constants.HECMInitialMIPRate / constants.PercentageMultiplier

	grossFee := OriginationFee(r.MaxClaimAmount)
	r.OriginationFeeUnclamped = grossFee - s.LenderCredit
	r.OriginationFee = mathutil.ClampNonNegative(r.OriginationFeeUnclamped)

	upfrontCosts := r.InitialMIP + r.OriginationFeeUnclamped + s.ThirdPartyCosts
	r.NetPrincipalLimit = r.PrincipalLimit - upfrontCosts - s.ExistingMortgagePayoff

	available := mathutil.ClampNonNegative(r.NetPrincipalLimit)

	switch s.Disbursement {
	case LumpSum:
		r.CashToBorrower = available
	case LineOfCredit:
		r.LineOfCredit = available
	case Tenure:
		r.MonthlyPayment = tenurePayment(available, s.NoteRate)
	case Term:
		r.MonthlyPayment = termPayment(available, s.NoteRate, s.TermYears)
	case ModifiedTenure:
		r.LineOfCredit = available / 2
		r.MonthlyPayment = tenurePayment(available/2, s.NoteRate)
	case ModifiedTerm:
		r.LineOfCredit = available / 2
		r.MonthlyPayment = termPayment(available/2, s.NoteRate, s.TermYears)
	default:
		return Result{}, fmt.Errorf("unknown disbursement type %q", s.Disbursement)
	}

	r.GrowthRate = s.NoteRate + constants.HECMGrowthMIPSpread
	r.Projections = project(r, s, mathutil.ClampNonNegative(upfrontCosts)+s.ExistingMortgagePayoff)

	return r, nil
}

// tenurePayment sizes a lifetime monthly payment with an amortized annuity
// over an assumed 240-month horizon scaled by a conservative factor. This is
// an explicit simplification, not actuarial tenure pricing.
func tenurePayment(available, noteRate float64) float64 {
	payment := amort.MonthlyPayment(available, noteRate+constants.HECMGrowthMIPSpread, constants.HECMTenureHorizonMonths)
	return payment * constants.HECMTenureScaleFactor
}

// termPayment sizes a monthly payment over the requested term, unscaled.
func termPayment(available, noteRate float64, termYears int) float64 {
	if termYears <= 0 {
		return 0
	}
	return amort.MonthlyPayment(available, noteRate+constants.HECMGrowthMIPSpread, termYears*constants.MonthsPerYear)
}

// project compounds the line of credit and the loan balance forward year by
// year at the growth rate. The starting balance is everything drawn at
// closing: upfront costs, any mortgage payoff, and cash taken.
func project(r Result, s Scenario, closingDraw float64) []YearProjection {
	years := s.ProjectionYears
	if years <= 0 {
		years = 10
	}

	growth := 1 + r.GrowthRate/constants.PercentageMultiplier
	loc := r.LineOfCredit
	balance := closingDraw + r.CashToBorrower

	projections := make([]YearProjection, 0, years)
	for year := 1; year <= years; year++ {
		loc *= growth
		balance *= growth
		// Monthly disbursements land on the balance at year end.
		balance += r.MonthlyPayment * constants.MonthsPerYear
		projections = append(projections, YearProjection{
			Year:         year,
			LineOfCredit: loc,
			LoanBalance:  balance,
		})
	}
	return projections
}
