// Package closing aggregates fee line items, prepaids, and credits into
// closing-cost totals and the cash needed to close.
package closing

import (
	"strings"

	"github.com/loanscope/loan-compare/pkg/constants"
)

// FeeItem is a named non-negative currency amount.
type FeeItem struct {
	Name   string
	Amount float64
}

// Sheet is the full set of fee, credit, prepaid, and points inputs for one
// loan scenario. Field-level amounts are always >= 0; netting against credits
// happens only in the aggregate.
type Sheet struct {
	LenderFees          []FeeItem
	ThirdPartyFees      []FeeItem
	TitleGovernmentFees []FeeItem
	OtherFees           []FeeItem
	CustomFees          []FeeItem

	LenderCredit float64
	SellerCredit float64
	OtherCredits float64

	DiscountPoints bool
	PointsPercent  float64

	AnnualTaxes           float64
	AnnualInsurance       float64
	MonthlyHOA            float64
	TaxEscrowMonths       int
	InsuranceEscrowMonths int
	PrepaidInterestDays   int
}

// Breakdown is the computed closing-cost aggregate. NetFees is deliberately
// unclamped: a heavily credited loan can legitimately net negative, and any
// clamping to zero is a display concern.
type Breakdown struct {
	Itemized          map[string]float64
	PointsCost        float64
	UpfrontProgramFee float64
	TotalClosingCosts float64
	DailyInterest     float64
	PrepaidInterest   float64
	TotalPrepaids     float64
	TotalCredits      float64
	NetFees           float64
	CashToClose       float64
}

func sumItems(itemized map[string]float64, items []FeeItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Amount
		itemized[item.Name] += item.Amount
	}
	return total
}

// Aggregate computes the closing-cost breakdown for a scenario. The upfront
// program fee (FHA MIP, VA funding fee, or USDA guarantee fee) is supplied by
// the caller since it is program-specific.
func Aggregate(loanAmount, annualRatePercent, downPayment float64, refinance bool, cashOut, upfrontProgramFee float64, sheet Sheet) Breakdown {
	b := Breakdown{
		Itemized:          make(map[string]float64),
		UpfrontProgramFee: upfrontProgramFee,
	}

	fees := sumItems(b.Itemized, sheet.LenderFees)
	fees += sumItems(b.Itemized, sheet.ThirdPartyFees)
	fees += sumItems(b.Itemized, sheet.TitleGovernmentFees)
	fees += sumItems(b.Itemized, sheet.OtherFees)
	fees += sumItems(b.Itemized, sheet.CustomFees)

	if sheet.DiscountPoints && sheet.PointsPercent > 0 {
		b.PointsCost = loanAmount * sheet.PointsPercent / constants.PercentageMultiplier
		b.Itemized["Discount Points"] = b.PointsCost
	}
	if upfrontProgramFee > 0 {
		b.Itemized["Upfront Program Fee"] = upfrontProgramFee
	}

	b.TotalClosingCosts = fees + b.PointsCost + upfrontProgramFee

	b.DailyInterest = loanAmount * annualRatePercent / constants.PercentageMultiplier / constants.DaysPerYear
	b.PrepaidInterest = b.DailyInterest * float64(sheet.PrepaidInterestDays)
	monthlyTaxes := sheet.AnnualTaxes / constants.MonthsPerYear
	monthlyInsurance := sheet.AnnualInsurance / constants.MonthsPerYear
	b.TotalPrepaids = monthlyTaxes*float64(sheet.TaxEscrowMonths) +
		monthlyInsurance*float64(sheet.InsuranceEscrowMonths) +
		b.PrepaidInterest

	b.TotalCredits = sheet.LenderCredit + sheet.SellerCredit + sheet.OtherCredits

	b.NetFees = b.TotalClosingCosts + b.TotalPrepaids - b.TotalCredits

	if refinance {
		b.CashToClose = b.NetFees - cashOut
	} else {
		b.CashToClose = downPayment + b.NetFees
	}

	return b
}

// financeChargeNames marks the lender-fee names that count as Regulation Z
// finance charges for APR purposes. Escrowed taxes and insurance, owner's
// title, third-party fees, and recording/transfer taxes are excluded.
var financeChargeNames = []string{
	"origination",
	"processing",
	"underwriting",
	"application",
	"commitment",
}

func isFinanceChargeFee(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range financeChargeNames {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// FinanceCharges returns the subset of the breakdown treated as finance
// charges when solving for APR: discount points, the upfront program fee,
// prepaid interest, and qualifying lender fees.
func (b Breakdown) FinanceCharges(sheet Sheet) float64 {
	total := b.PointsCost + b.UpfrontProgramFee + b.PrepaidInterest
	for _, item := range sheet.LenderFees {
		if isFinanceChargeFee(item.Name) {
			total += item.Amount
		}
	}
	return total
}
