package closing

import (
	"math"
	"testing"
)

func testSheet() Sheet {
	return Sheet{
		LenderFees: []FeeItem{
			{Name: "Origination Fee", Amount: 1500},
			{Name: "Underwriting Fee", Amount: 650},
		},
		ThirdPartyFees: []FeeItem{
			{Name: "Appraisal", Amount: 550},
			{Name: "Credit Report", Amount: 45},
		},
		TitleGovernmentFees: []FeeItem{
			{Name: "Lender's Title Insurance", Amount: 900},
			{Name: "Recording Fee", Amount: 125},
		},
		OtherFees: []FeeItem{
			{Name: "Survey", Amount: 400},
		},
		CustomFees: []FeeItem{
			{Name: "HOA Transfer", Amount: 250},
		},
		LenderCredit:          500,
		SellerCredit:          2000,
		DiscountPoints:        true,
		PointsPercent:         1.0,
		AnnualTaxes:           4800,
		AnnualInsurance:       1800,
		TaxEscrowMonths:       3,
		InsuranceEscrowMonths: 2,
		PrepaidInterestDays:   15,
	}
}

func TestAggregatePurchase(t *testing.T) {
	b := Aggregate(320000, 6.0, 80000, false, 0, 5600, testSheet())

	// Categories + custom: 1500+650+550+45+900+125+400+250 = 4420
	// Points: 320000 * 1% = 3200; program fee 5600.
	if math.Abs(b.PointsCost-3200) > 0.001 {
		t.Errorf("points cost = %v, expected 3200", b.PointsCost)
	}
	if math.Abs(b.TotalClosingCosts-(4420+3200+5600)) > 0.001 {
		t.Errorf("total closing costs = %v, expected 13220", b.TotalClosingCosts)
	}

	// Daily interest: 320000*6/100/365 = 52.6027...; prepaid 15 days.
	expectedDaily := 320000 * 6.0 / 100 / 365
	if math.Abs(b.DailyInterest-expectedDaily) > 1e-9 {
		t.Errorf("daily interest = %v, expected %v", b.DailyInterest, expectedDaily)
	}
	expectedPrepaids := 400.0*3 + 150.0*2 + expectedDaily*15
	if math.Abs(b.TotalPrepaids-expectedPrepaids) > 0.001 {
		t.Errorf("prepaids = %v, expected %v", b.TotalPrepaids, expectedPrepaids)
	}

	if b.TotalCredits != 2500 {
		t.Errorf("credits = %v, expected 2500", b.TotalCredits)
	}

	expectedNet := b.TotalClosingCosts + b.TotalPrepaids - 2500
	if math.Abs(b.NetFees-expectedNet) > 0.001 {
		t.Errorf("net fees = %v, expected %v", b.NetFees, expectedNet)
	}
	if math.Abs(b.CashToClose-(80000+expectedNet)) > 0.001 {
		t.Errorf("cash to close = %v, expected %v", b.CashToClose, 80000+expectedNet)
	}
}

func TestAggregateRefinanceCashOut(t *testing.T) {
	sheet := testSheet()
	b := Aggregate(320000, 6.0, 0, true, 40000, 0, sheet)

	expectedCash := b.NetFees - 40000
	if math.Abs(b.CashToClose-expectedCash) > 0.001 {
		t.Errorf("refinance cash to close = %v, expected %v", b.CashToClose, expectedCash)
	}
	if b.CashToClose >= 0 {
		t.Errorf("large cash-out should produce negative cash to close, got %v", b.CashToClose)
	}
}

// Heavy credits can push net fees negative; the aggregate must preserve the
// unclamped value.
func TestAggregateNegativeNetPreserved(t *testing.T) {
	sheet := Sheet{
		LenderFees:   []FeeItem{{Name: "Origination Fee", Amount: 1000}},
		LenderCredit: 6000,
	}
	b := Aggregate(300000, 6.0, 0, false, 0, 0, sheet)
	if b.NetFees >= 0 {
		t.Errorf("net fees = %v, expected negative (unclamped)", b.NetFees)
	}
	if math.Abs(b.NetFees-(-5000)) > 0.001 {
		t.Errorf("net fees = %v, expected -5000", b.NetFees)
	}
}

func TestAggregateNoPointsWhenFlagUnset(t *testing.T) {
	sheet := testSheet()
	sheet.DiscountPoints = false
	b := Aggregate(320000, 6.0, 80000, false, 0, 0, sheet)
	if b.PointsCost != 0 {
		t.Errorf("points cost = %v with flag unset, expected 0", b.PointsCost)
	}
	if _, ok := b.Itemized["Discount Points"]; ok {
		t.Error("itemized map should not contain points when flag unset")
	}
}

func TestFinanceCharges(t *testing.T) {
	sheet := testSheet()
	b := Aggregate(320000, 6.0, 80000, false, 0, 5600, sheet)

	// Points + program fee + prepaid interest + origination + underwriting.
	expected := b.PointsCost + 5600 + b.PrepaidInterest + 1500 + 650
	if got := b.FinanceCharges(sheet); math.Abs(got-expected) > 0.001 {
		t.Errorf("finance charges = %v, expected %v", got, expected)
	}
}

func TestFinanceChargesExcludesThirdParty(t *testing.T) {
	sheet := Sheet{
		LenderFees:          []FeeItem{{Name: "Processing Fee", Amount: 400}},
		ThirdPartyFees:      []FeeItem{{Name: "Appraisal", Amount: 550}},
		TitleGovernmentFees: []FeeItem{{Name: "Owner's Title Insurance", Amount: 1200}},
	}
	b := Aggregate(300000, 6.0, 0, false, 0, 0, sheet)
	if got := b.FinanceCharges(sheet); math.Abs(got-400) > 0.001 {
		t.Errorf("finance charges = %v, expected 400 (lender processing fee only)", got)
	}
}

func TestItemizedMap(t *testing.T) {
	b := Aggregate(320000, 6.0, 80000, false, 0, 5600, testSheet())
	if b.Itemized["Appraisal"] != 550 {
		t.Errorf("itemized appraisal = %v, expected 550", b.Itemized["Appraisal"])
	}
	if b.Itemized["Upfront Program Fee"] != 5600 {
		t.Errorf("itemized program fee = %v, expected 5600", b.Itemized["Upfront Program Fee"])
	}
	if math.Abs(b.Itemized["Discount Points"]-3200) > 0.001 {
		t.Errorf("itemized points = %v, expected 3200", b.Itemized["Discount Points"])
	}
}
