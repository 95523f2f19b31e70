package apr

import (
	"math"
	"testing"

	"github.com/loanscope/loan-compare/pkg/amort"
)

// With zero finance charges the solved APR must recover the nominal note
// rate to within a hundredth of a percentage point.
func TestSolveConvergesToNoteRate(t *testing.T) {
	tests := []struct {
		name       string
		loanAmount float64
		noteRate   float64
		termMonths int
	}{
		{"30-year at 6 percent", 300000, 6.0, 360},
		{"15-year at 4.5 percent", 180000, 4.5, 180},
		{"20-year at 8 percent", 250000, 8.0, 240},
		{"10-year at 2.75 percent", 100000, 2.75, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := amort.MonthlyPayment(tt.loanAmount, tt.noteRate, tt.termMonths)
			got := Solve(payment, tt.loanAmount, 0, tt.termMonths)
			if math.Abs(got-tt.noteRate) > 0.01 {
				t.Errorf("Solve() = %.4f, expected %.4f within 0.01", got, tt.noteRate)
			}
		})
	}
}

// Larger finance charges must strictly raise the solved APR.
func TestSolveMonotonicInFinanceCharges(t *testing.T) {
	payment := amort.MonthlyPayment(300000, 6.0, 360)
	charges := []float64{0, 1000, 3000, 6000, 12000}

	previous := -1.0
	for _, charge := range charges {
		got := Solve(payment, 300000, charge, 360)
		if got <= previous {
			t.Errorf("APR with charges %.0f = %.4f, expected > %.4f", charge, got, previous)
		}
		previous = got
	}
}

func TestSolveWithChargesExceedsNoteRate(t *testing.T) {
	payment := amort.MonthlyPayment(300000, 6.0, 360)
	got := Solve(payment, 300000, 6000, 360)
	if got <= 6.0 {
		t.Errorf("APR with finance charges = %.4f, expected above note rate 6.0", got)
	}
	if got > 7.0 {
		t.Errorf("APR = %.4f looks implausibly high for $6000 of charges", got)
	}
}

func TestSolveDegenerateInputs(t *testing.T) {
	tests := []struct {
		name           string
		payment        float64
		loanAmount     float64
		financeCharges float64
		numPayments    int
	}{
		{"Zero payment", 0, 300000, 1000, 360},
		{"Negative payment", -100, 300000, 1000, 360},
		{"Zero term", 1800, 300000, 1000, 0},
		{"Charges exceed loan", 1800, 100000, 100000, 360},
		{"Zero loan", 1800, 0, 0, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Solve(tt.payment, tt.loanAmount, tt.financeCharges, tt.numPayments); got != 0 {
				t.Errorf("Solve() = %v, expected sentinel 0", got)
			}
		})
	}
}

func TestPresentValue(t *testing.T) {
	// Zero rate degenerates to payment times count.
	if got := PresentValue(1000, 0, 120); got != 120000 {
		t.Errorf("PresentValue at zero rate = %v, expected 120000", got)
	}

	// Discounting a loan's own payment stream at its note rate recovers the
	// principal.
	payment := amort.MonthlyPayment(300000, 6.0, 360)
	got := PresentValue(payment, 0.06, 360)
	if math.Abs(got-300000) > 1.0 {
		t.Errorf("PresentValue = %.4f, expected about 300000", got)
	}
}
