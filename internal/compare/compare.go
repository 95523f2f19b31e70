// Package compare provides pure reducers over computed loan results: ranked
// comparisons, cost projections, and breakeven calculations.
package compare

import (
	"math"

	"github.com/loanscope/loan-compare/internal/engine"
)

// Metric names for the best-by-metric table.
const (
	MetricTotalMonthly = "totalMonthly"
	MetricCashToClose  = "cashToClose"
	MetricAPR          = "apr"
	MetricTotalCost    = "totalCost"
	MetricClosingCosts = "closingCosts"
	MetricCredits      = "credits"
)

// Metrics lists the metric names in display order.
var Metrics = []string{
	MetricTotalMonthly,
	MetricCashToClose,
	MetricAPR,
	MetricTotalCost,
	MetricClosingCosts,
	MetricCredits,
}

// Never is the breakeven sentinel meaning the upfront cost is never
// recovered.
var Never = math.Inf(1)

// Comparison ranks a batch of results. Best maps each metric to the index of
// the winning result; ties go to the first occurrence, which keeps the
// ranking deterministic for identical scenarios.
type Comparison struct {
	Best   map[string]int
	Deltas []Delta
}

// Delta is the pairwise difference between two results, B relative to A.
type Delta struct {
	A, B int

	TotalMonthly float64
	CashToClose  float64
	APR          float64
	TotalCost    float64
}

// metric extractors; cost metrics rank by minimum, credits by maximum.
var minMetrics = map[string]func(engine.Result) float64{
	MetricTotalMonthly: func(r engine.Result) float64 { return r.TotalMonthly },
	MetricCashToClose:  func(r engine.Result) float64 { return r.CashToClose },
	MetricAPR:          func(r engine.Result) float64 { return r.APR },
	MetricTotalCost:    func(r engine.Result) float64 { return r.TotalCost },
	MetricClosingCosts: func(r engine.Result) float64 { return r.TotalClosingCosts },
}

// Results builds the comparison table for a batch of computed results. An
// empty batch yields an empty table rather than an error so report code can
// run unconditionally.
func Results(results []engine.Result) Comparison {
	comparison := Comparison{Best: make(map[string]int)}
	if len(results) == 0 {
		return comparison
	}

	for metric, value := range minMetrics {
		best := 0
		for i := 1; i < len(results); i++ {
			if value(results[i]) < value(results[best]) {
				best = i
			}
		}
		comparison.Best[metric] = best
	}

	bestCredits := 0
	for i := 1; i < len(results); i++ {
		if results[i].TotalCredits > results[bestCredits].TotalCredits {
			bestCredits = i
		}
	}
	comparison.Best[MetricCredits] = bestCredits

	for i := 0; i < len(results); i++ {
		for j := i + 1; j < len(results); j++ {
			comparison.Deltas = append(comparison.Deltas, Delta{
				A:            i,
				B:            j,
				TotalMonthly: results[j].TotalMonthly - results[i].TotalMonthly,
				CashToClose:  results[j].CashToClose - results[i].CashToClose,
				APR:          results[j].APR - results[i].APR,
				TotalCost:    results[j].TotalCost - results[i].TotalCost,
			})
		}
	}

	return comparison
}

// NetCost projects the all-in cost of holding a loan for the given number of
// months: cash to close plus the recurring monthly total.
func NetCost(r engine.Result, months int) float64 {
	if months < 0 {
		months = 0
	}
	return r.CashToClose + r.TotalMonthly*float64(months)
}

// BreakevenMonths returns the number of whole months of savings needed to
// recover an upfront cost, or Never when monthly savings are not positive.
// Zero or negative upfront cost breaks even immediately.
func BreakevenMonths(upfrontCost, monthlySavings float64) float64 {
	if upfrontCost <= 0 {
		return 0
	}
	if monthlySavings <= 0 {
		return Never
	}
	return math.Ceil(upfrontCost / monthlySavings)
}

// PointsBreakevenMonths is BreakevenMonths specialized to discount points:
// the points cost against the monthly payment saved by the lower rate.
func PointsBreakevenMonths(pointsCost, monthlySavings float64) float64 {
	return BreakevenMonths(pointsCost, monthlySavings)
}

// RefinanceBreakevenMonths computes how long a refinance takes to pay for
// itself: the new loan's net fees against the monthly payment reduction.
func RefinanceBreakevenMonths(current, proposed engine.Result) float64 {
	return BreakevenMonths(proposed.NetFees, current.TotalMonthly-proposed.TotalMonthly)
}
