package programs

import (
	"github.com/loanscope/loan-compare/pkg/amort"
	"github.com/loanscope/loan-compare/pkg/constants"
)

// ARMTerms describes an adjustable-rate mortgage as fixedYears/adjustmentYears
// (e.g. 5/1) with its rate structure and caps, all in percent.
type ARMTerms struct {
	FixedYears      int
	AdjustmentYears int
	InitialRate     float64
	IndexRate       float64
	Margin          float64
	InitialCap      float64
	PeriodicCap     float64
	LifetimeCap     float64
}

// ARMProjection exposes the derived rates a borrower compares ARMs on.
type ARMProjection struct {
	FullyIndexedRate       float64
	WorstCaseRate          float64
	FirstAdjustmentMaxRate float64
	PeriodicMaxStep        float64
}

// Projection derives the display rates: the fully-indexed rate is index plus
// margin, the worst case is the initial rate plus the lifetime cap, and the
// first adjustment can rise at most by the initial cap.
func (t ARMTerms) Projection() ARMProjection {
	return ARMProjection{
		FullyIndexedRate:       t.IndexRate + t.Margin,
		WorstCaseRate:          t.InitialRate + t.LifetimeCap,
		FirstAdjustmentMaxRate: t.InitialRate + t.InitialCap,
		PeriodicMaxStep:        t.PeriodicCap,
	}
}

// TotalInterest estimates lifetime interest with a two-phase amortization:
// the initial rate carries the fixed period, then the remaining balance is
// re-amortized at the fully-indexed rate for the remaining term. The
// periodic-cap walk during the adjustable phase is deliberately not modeled;
// the fully-indexed and worst-case rates are exposed for display instead.
func (t ARMTerms) TotalInterest(loanAmount float64, termYears int) float64 {
	termMonths := termYears * constants.MonthsPerYear
	fixedMonths := t.FixedYears * constants.MonthsPerYear

	if loanAmount <= 0 || termMonths <= 0 {
		return 0
	}
	if fixedMonths >= termMonths {
		return amort.TotalInterest(loanAmount, t.InitialRate, termMonths)
	}

	fixedSchedule := amort.BuildSchedule(loanAmount, t.InitialRate, termMonths, amort.Extra{})
	fixedInterest := 0.0
	if fixedMonths > 0 {
		fixedInterest = fixedSchedule.Payments[fixedMonths-1].CumulativeInterest
	}

	remaining := amort.RemainingBalance(loanAmount, t.InitialRate, termMonths, fixedMonths)
	adjustableInterest := amort.TotalInterest(remaining, t.Projection().FullyIndexedRate, termMonths-fixedMonths)

	return fixedInterest + adjustableInterest
}
