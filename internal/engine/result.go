package engine

// ARMOutlook is the display block for adjustable-rate scenarios.
type ARMOutlook struct {
	FullyIndexedRate       float64
	WorstCaseRate          float64
	FirstAdjustmentMaxRate float64
	PeriodicMaxStep        float64
}

// Result is the complete cost breakdown derived from one Scenario. A Result
// is never mutated after computation; any input change produces a wholly new
// Result.
type Result struct {
	ScenarioName string
	LoanType     string

	MonthlyPI        float64
	MonthlyMI        float64
	MonthlyTaxes     float64
	MonthlyInsurance float64
	MonthlyHOA       float64
	TotalMonthly     float64

	TotalClosingCosts float64
	TotalPrepaids     float64
	TotalCredits      float64
	NetFees           float64 // unclamped; may be negative with heavy credits
	CashToClose       float64

	APR           float64
	TotalInterest float64
	TotalCost     float64 // interest + lifetime mortgage insurance + net fees

	// MIRemovalMonth is the first schedule month at which conventional
	// mortgage insurance terminates; 0 when no removable insurance applies.
	MIRemovalMonth int

	ItemizedFees map[string]float64

	ARM *ARMOutlook
}
