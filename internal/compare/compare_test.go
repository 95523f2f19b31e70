package compare

import (
	"math"
	"testing"

	"github.com/loanscope/loan-compare/internal/engine"
)

func result(name string, monthly, cash, apr, totalCost, credits float64) engine.Result {
	return engine.Result{
		ScenarioName: name,
		TotalMonthly: monthly,
		CashToClose:  cash,
		APR:          apr,
		TotalCost:    totalCost,
		TotalCredits: credits,
	}
}

func TestResultsBestByMetric(t *testing.T) {
	results := []engine.Result{
		result("a", 2100, 25000, 6.45, 400000, 1000),
		result("b", 1950, 32000, 6.20, 380000, 2500),
		result("c", 2050, 18000, 6.60, 410000, 0),
	}

	comparison := Results(results)

	if comparison.Best[MetricTotalMonthly] != 1 {
		t.Errorf("best monthly = %d, expected 1", comparison.Best[MetricTotalMonthly])
	}
	if comparison.Best[MetricCashToClose] != 2 {
		t.Errorf("best cash to close = %d, expected 2", comparison.Best[MetricCashToClose])
	}
	if comparison.Best[MetricAPR] != 1 {
		t.Errorf("best APR = %d, expected 1", comparison.Best[MetricAPR])
	}
	if comparison.Best[MetricCredits] != 1 {
		t.Errorf("best credits = %d, expected 1", comparison.Best[MetricCredits])
	}
}

// Ties resolve to the first occurrence, deterministically.
func TestResultsTieBreak(t *testing.T) {
	results := []engine.Result{
		result("first", 2000, 20000, 6.5, 400000, 0),
		result("second", 2000, 20000, 6.5, 400000, 0),
	}

	comparison := Results(results)
	for metric, index := range comparison.Best {
		if index != 0 {
			t.Errorf("metric %s picked index %d on a tie, expected 0", metric, index)
		}
	}
}

func TestResultsEmptyAndSingle(t *testing.T) {
	empty := Results(nil)
	if len(empty.Best) != 0 || len(empty.Deltas) != 0 {
		t.Error("empty input should produce an empty comparison")
	}

	single := Results([]engine.Result{result("only", 2000, 20000, 6.5, 400000, 0)})
	for metric, index := range single.Best {
		if index != 0 {
			t.Errorf("metric %s = %d for a single result, expected 0", metric, index)
		}
	}
	if len(single.Deltas) != 0 {
		t.Error("single result should produce no pairwise deltas")
	}
}

func TestResultsPairwiseDeltas(t *testing.T) {
	results := []engine.Result{
		result("a", 2100, 25000, 6.45, 400000, 0),
		result("b", 1950, 32000, 6.20, 380000, 0),
		result("c", 2050, 18000, 6.60, 410000, 0),
	}

	comparison := Results(results)
	if len(comparison.Deltas) != 3 {
		t.Fatalf("deltas count = %d, expected 3", len(comparison.Deltas))
	}

	first := comparison.Deltas[0]
	if first.A != 0 || first.B != 1 {
		t.Fatalf("first delta pair = (%d,%d), expected (0,1)", first.A, first.B)
	}
	if first.TotalMonthly != -150 {
		t.Errorf("monthly delta = %v, expected -150", first.TotalMonthly)
	}
	if first.CashToClose != 7000 {
		t.Errorf("cash delta = %v, expected 7000", first.CashToClose)
	}
}

func TestNetCost(t *testing.T) {
	r := result("a", 2000, 25000, 6.5, 0, 0)
	if got := NetCost(r, 60); got != 25000+2000*60 {
		t.Errorf("NetCost = %v, expected 145000", got)
	}
	if got := NetCost(r, 0); got != 25000 {
		t.Errorf("NetCost at zero months = %v, expected 25000", got)
	}
	if got := NetCost(r, -12); got != 25000 {
		t.Errorf("NetCost at negative months = %v, expected 25000", got)
	}
}

func TestBreakevenMonths(t *testing.T) {
	tests := []struct {
		name     string
		upfront  float64
		savings  float64
		expected float64
	}{
		{"Exact division", 3000, 100, 30},
		{"Rounds up", 3050, 100, 31},
		{"Zero upfront", 0, 100, 0},
		{"Negative upfront", -500, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BreakevenMonths(tt.upfront, tt.savings); got != tt.expected {
				t.Errorf("BreakevenMonths(%v, %v) = %v, expected %v", tt.upfront, tt.savings, got, tt.expected)
			}
		})
	}
}

// Non-positive savings return the Never sentinel, not NaN and not a negative
// month count.
func TestBreakevenNeverSentinel(t *testing.T) {
	for _, savings := range []float64{0, -5} {
		got := PointsBreakevenMonths(3200, savings)
		if !math.IsInf(got, 1) {
			t.Errorf("PointsBreakevenMonths(3200, %v) = %v, expected +Inf", savings, got)
		}
		if math.IsNaN(got) || got < 0 {
			t.Errorf("sentinel must not be NaN or negative, got %v", got)
		}
	}
}

func TestRefinanceBreakevenMonths(t *testing.T) {
	current := result("current", 2100, 0, 0, 0, 0)
	proposed := result("proposed", 1950, 0, 0, 0, 0)
	proposed.NetFees = 4500

	got := RefinanceBreakevenMonths(current, proposed)
	if got != 30 {
		t.Errorf("refinance breakeven = %v, expected 30", got)
	}

	// A refinance that raises the payment never breaks even.
	worse := result("worse", 2200, 0, 0, 0, 0)
	worse.NetFees = 4500
	if got := RefinanceBreakevenMonths(current, worse); !math.IsInf(got, 1) {
		t.Errorf("breakeven on higher payment = %v, expected +Inf", got)
	}
}
