package programs

import "github.com/loanscope/loan-compare/pkg/constants"

// ServiceType distinguishes regular military service from Reserves or
// National Guard service for VA funding-fee purposes.
type ServiceType string

const (
	ServiceRegular  ServiceType = "regular"
	ServiceReserves ServiceType = "reserves"
)

// VAParams carries everything the VA funding-fee decision table keys on.
type VAParams struct {
	Exempt              bool
	OverrideRatePercent float64 // explicit fee rate; 0 means no override
	FirstTimeUse        bool
	Service             ServiceType
	Refinance           bool
	CashOutAmount       float64
	DownPaymentPercent  float64
}

// VAFundingFeeRate selects the funding-fee percentage for the given
// parameters. Exempt borrowers pay nothing and an explicit override rate
// always wins. Otherwise:
//
//   - Purchase: down < 5% pays 2.15% on first use, 3.3% on subsequent use;
//     down 5-10% pays 1.5%; down >= 10% pays 1.25%.
//   - Refinance with cash out: same rates as the purchase down < 5% row,
//     regardless of equity.
//   - Rate-reduction refinance (no cash out): flat 0.5%.
//   - Reserves/National Guard, first use, down < 5%: 2.4% instead of 2.15%.
func VAFundingFeeRate(p VAParams) float64 {
	if p.Exempt {
		return 0
	}
	if p.OverrideRatePercent != 0 {
		return p.OverrideRatePercent
	}

	if p.Refinance {
		if p.CashOutAmount > 0 {
			return vaLowEquityRate(p, true)
		}
		return 0.5
	}

	switch {
	case p.DownPaymentPercent >= 10:
		return 1.25
	case p.DownPaymentPercent >= 5:
		return 1.5
	default:
		return vaLowEquityRate(p, false)
	}
}

// vaLowEquityRate is the shared <5%-down row of the table, also used for
// cash-out refinances. The Reserves first-use bump only applies to the
// purchase column.
func vaLowEquityRate(p VAParams, cashOutRefi bool) float64 {
	if !p.FirstTimeUse {
		return 3.3
	}
	if !cashOutRefi && p.Service == ServiceReserves && p.DownPaymentPercent < 5 {
		return 2.4
	}
	return 2.15
}

// VAFundingFee calculates the funding fee amount and returns it together with
// the rate applied.
func VAFundingFee(loanAmount float64, p VAParams) (fee, ratePercent float64) {
	ratePercent = VAFundingFeeRate(p)
	fee = loanAmount * ratePercent / constants.PercentageMultiplier
	return fee, ratePercent
}
