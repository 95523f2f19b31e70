package config

import (
	"fmt"

	"github.com/loanscope/loan-compare/internal/engine"
	"github.com/loanscope/loan-compare/pkg/mathutil"
)

// ValidateConfiguration checks the configuration for suspicious values and
// returns human-readable warnings. Warnings never block computation; the
// engine's contract is defaulted numeric inputs, not validation errors.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Scenarios) == 0 && conf.HECM == nil {
		warnings = append(warnings, "configuration contains no scenarios")
	}

	for _, sc := range conf.Scenarios {
		warnings = append(warnings, sc.validate()...)
	}

	return warnings
}

func (sc ScenarioConfig) validate() []string {
	var warnings []string

	label := sc.Name
	if label == "" {
		label = "(unnamed)"
	}

	if sc.HomePrice <= 0 {
		warnings = append(warnings, fmt.Sprintf("scenario %s: home price %.2f is not positive", label, sc.HomePrice))
	}
	if sc.TermYears <= 0 {
		warnings = append(warnings, fmt.Sprintf("scenario %s: term %d years is not positive", label, sc.TermYears))
	}
	if sc.InterestRate < 0 || sc.InterestRate > 30 {
		warnings = append(warnings, fmt.Sprintf("scenario %s: interest rate %.2f%% is outside [0, 30]", label, sc.InterestRate))
	}

	if sc.Transaction == string(engine.Purchase) {
		if !mathutil.WithinTolerance(sc.LoanAmount, sc.HomePrice-sc.DownPayment, 0.01) {
			warnings = append(warnings, fmt.Sprintf(
				"scenario %s: loan amount %.2f does not equal home price minus down payment (%.2f)",
				label, sc.LoanAmount, sc.HomePrice-sc.DownPayment))
		}
	}

	for _, group := range [][]FeeItemConfig{sc.Fees.Lender, sc.Fees.ThirdParty, sc.Fees.TitleGovernment, sc.Fees.Other, sc.Fees.Custom} {
		for _, item := range group {
			if item.Amount < 0 {
				warnings = append(warnings, fmt.Sprintf("scenario %s: fee %q has negative amount %.2f", label, item.Name, item.Amount))
			}
		}
	}
	if sc.Credits.Lender < 0 || sc.Credits.Seller < 0 || sc.Credits.Other < 0 {
		warnings = append(warnings, fmt.Sprintf("scenario %s: credits must be non-negative", label))
	}
	if sc.Points.Enabled && sc.Points.Percent <= 0 {
		warnings = append(warnings, fmt.Sprintf("scenario %s: points enabled but percent is %.2f", label, sc.Points.Percent))
	}
	if sc.CashOut > 0 && sc.Transaction != string(engine.Refinance) {
		warnings = append(warnings, fmt.Sprintf("scenario %s: cash out %.2f on a non-refinance transaction", label, sc.CashOut))
	}

	return warnings
}
