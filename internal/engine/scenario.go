// Package engine defines the loan scenario data model and computes complete
// cost breakdowns from it.
package engine

import (
	"github.com/loanscope/loan-compare/pkg/closing"
	"github.com/loanscope/loan-compare/pkg/constants"
	"github.com/loanscope/loan-compare/pkg/programs"
)

// TransactionType distinguishes purchases from refinances.
type TransactionType string

const (
	Purchase  TransactionType = "purchase"
	Refinance TransactionType = "refinance"
)

// Program is the loan-program variant of a scenario. Each variant carries
// only the fields its program needs; Compute dispatches on the concrete type
// and rejects anything unknown, so a new program cannot be silently priced as
// a conventional loan.
type Program interface {
	// Label is the loan-type tag used in display and persistence.
	Label() string

	isProgram()
}

// Conventional is a conventionally insured loan. A zero PMIRateOverride means
// the rate is estimated from LTV and credit score.
type Conventional struct {
	PMIRateOverride float64 // annual percent
}

// FHA carries the upfront and annual mortgage insurance premium rates.
type FHA struct {
	UpfrontMIPRate float64 // percent of loan amount
	AnnualMIPRate  float64 // annual percent
}

// VA carries the funding-fee inputs.
type VA struct {
	Exempt             bool
	FirstTimeUse       bool
	Service            programs.ServiceType
	FundingFeeOverride float64 // percent; 0 means use the decision table
}

// USDA carries the upfront and annual guarantee fee rates.
type USDA struct {
	UpfrontRate float64 // percent of loan amount
	AnnualRate  float64 // annual percent
}

// ARM wraps the adjustable-rate terms. The scenario's InterestRate is ignored
// in favor of the ARM initial rate.
type ARM struct {
	Terms programs.ARMTerms
}

func (Conventional) Label() string { return "conventional" }
func (FHA) Label() string          { return "fha" }
func (VA) Label() string           { return "va" }
func (USDA) Label() string         { return "usda" }
func (ARM) Label() string          { return "arm" }

func (Conventional) isProgram() {}
func (FHA) isProgram()          {}
func (VA) isProgram()           {}
func (USDA) isProgram()         {}
func (ARM) isProgram()          {}

// Scenario is the normalized input record for one loan. It is immutable per
// computation: identical scenarios always produce identical results. All
// percentage fields are whole-number percent (6.5 means 6.5%); conversion to
// decimal monthly rates happens only inside computation.
type Scenario struct {
	Name        string
	Transaction TransactionType

	HomePrice    float64
	LoanAmount   float64
	DownPayment  float64
	InterestRate float64 // annual percent
	TermYears    int

	CreditScores []int
	LoanProgram  programs.LoanProgram

	CashOutAmount float64 // refinance cash out

	Program Program

	Fees closing.Sheet
}

// NoteRate is the rate the loan amortizes at during its initial period: the
// ARM initial rate for ARMs, the scenario interest rate otherwise.
func (s Scenario) NoteRate() float64 {
	if arm, ok := s.Program.(ARM); ok {
		return arm.Terms.InitialRate
	}
	return s.InterestRate
}

// DownPaymentPercent returns the down payment as a percent of the home price.
func (s Scenario) DownPaymentPercent() float64 {
	if s.HomePrice <= 0 {
		return 0
	}
	return s.DownPayment / s.HomePrice * constants.PercentageMultiplier
}

// LTV returns the loan-to-value ratio as a percent.
func (s Scenario) LTV() float64 {
	if s.HomePrice <= 0 {
		return 0
	}
	return s.LoanAmount / s.HomePrice * constants.PercentageMultiplier
}

// TermMonths returns the nominal term in months.
func (s Scenario) TermMonths() int {
	return s.TermYears * constants.MonthsPerYear
}
