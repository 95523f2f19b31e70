// Package output provides utilities for formatting and displaying loan results.
package output

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/loanscope/loan-compare/internal/compare"
	"github.com/loanscope/loan-compare/internal/engine"
	"github.com/loanscope/loan-compare/pkg/amort"
	"github.com/loanscope/loan-compare/pkg/constants"
	"github.com/loanscope/loan-compare/pkg/datetime"
	"github.com/loanscope/loan-compare/pkg/hecm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyComparison outputs a human-readable rather than machine-readable table.
func PrettyComparison(w io.Writer, results []engine.Result, comparison compare.Comparison) {
	p := message.NewPrinter(language.English)
	for _, result := range results {
		fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.ScenarioName)
		_, _ = p.Fprintf(w, "Monthly P&I         | $%.2f\n", result.MonthlyPI)
		if result.MonthlyMI > 0 {
			_, _ = p.Fprintf(w, "Monthly MI          | $%.2f", result.MonthlyMI)
			if result.MIRemovalMonth > 0 {
				fmt.Fprintf(w, " (drops at month %d)", result.MIRemovalMonth)
			}
			fmt.Fprintf(w, "\n")
		}
		_, _ = p.Fprintf(w, "Total monthly       | $%.2f\n", result.TotalMonthly)
		_, _ = p.Fprintf(w, "Closing costs       | $%.2f\n", result.TotalClosingCosts)
		_, _ = p.Fprintf(w, "Cash to close       | $%.2f\n", result.CashToClose)
		fmt.Fprintf(w, "APR                 | %.3f%%\n", result.APR)
		_, _ = p.Fprintf(w, "Total interest      | $%.2f\n", result.TotalInterest)
		_, _ = p.Fprintf(w, "Total cost of loan  | $%.2f\n", result.TotalCost)
		if result.ARM != nil {
			fmt.Fprintf(w, "ARM fully indexed   | %.3f%%\n", result.ARM.FullyIndexedRate)
			fmt.Fprintf(w, "ARM worst case      | %.3f%%\n", result.ARM.WorstCaseRate)
		}
		if len(results) > 1 {
			fmt.Fprintf(w, "\n")
		}
	}
	if len(results) > 1 {
		fmt.Fprintf(w, "--- Best scenario by metric ---\n")
		for _, metric := range compare.Metrics {
			idx, ok := comparison.Best[metric]
			if !ok || idx < 0 || idx >= len(results) {
				continue
			}
			fmt.Fprintf(w, "%-20s| %s\n", metric, results[idx].ScenarioName)
		}
	}
}

// CsvComparison outputs in comma-separated value format.
func CsvComparison(w io.Writer, results []engine.Result) {
	fmt.Fprintf(w, `"metric"`)
	for _, result := range results {
		fmt.Fprintf(w, `,"%s"`, result.ScenarioName)
	}
	fmt.Fprintf(w, "\n")
	rows := []struct {
		label string
		value func(engine.Result) float64
	}{
		{"monthly P&I", func(r engine.Result) float64 { return r.MonthlyPI }},
		{"monthly MI", func(r engine.Result) float64 { return r.MonthlyMI }},
		{"total monthly", func(r engine.Result) float64 { return r.TotalMonthly }},
		{"closing costs", func(r engine.Result) float64 { return r.TotalClosingCosts }},
		{"cash to close", func(r engine.Result) float64 { return r.CashToClose }},
		{"APR", func(r engine.Result) float64 { return r.APR }},
		{"total interest", func(r engine.Result) float64 { return r.TotalInterest }},
		{"total cost", func(r engine.Result) float64 { return r.TotalCost }},
	}
	for _, row := range rows {
		fmt.Fprintf(w, `"%s"`, row.label)
		for _, result := range results {
			fmt.Fprintf(w, `,"%.2f"`, row.value(result))
		}
		fmt.Fprintf(w, "\n")
	}
}

// monthLabel formats the schedule month as a calendar date when a start month
// is given, falling back to the bare month index.
func monthLabel(startMonth string, month int) string {
	if startMonth == "" {
		return fmt.Sprintf("%7d", month)
	}
	date, err := datetime.OffsetDate(startMonth, constants.DateTimeLayout, month-1)
	if err != nil {
		return fmt.Sprintf("%7d", month)
	}
	return date
}

// PrettySchedule outputs an amortization schedule as a human-readable table.
// startMonth, when non-empty, labels rows with calendar dates in YYYY-MM form.
func PrettySchedule(w io.Writer, name string, schedule amort.Schedule, startMonth string) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Amortization schedule for %s ---\n", name)
	fmt.Fprintf(w, "Month   | Payment      | Interest     | Principal    | Balance\n")
	fmt.Fprintf(w, "_____   | ____________ | ____________ | ____________ | _____________\n")
	for _, payment := range schedule.Payments {
		_, _ = p.Fprintf(w, "%s | $%.2f | $%.2f | $%.2f | $%.2f\n",
			monthLabel(startMonth, payment.Month),
			payment.Payment, payment.Interest, payment.Principal, payment.RemainingPrincipal)
	}
	_, _ = p.Fprintf(w, "\nPaid off in %d months; total interest $%.2f, total paid $%.2f\n",
		schedule.PayoffMonth, schedule.TotalInterest, schedule.TotalPaid)
}

// CsvSchedule outputs an amortization schedule in comma-separated value format.
func CsvSchedule(w io.Writer, schedule amort.Schedule, startMonth string) {
	fmt.Fprintf(w, "\"month\",\"payment\",\"interest\",\"principal\",\"cumulative interest\",\"balance\"\n")
	for _, payment := range schedule.Payments {
		fmt.Fprintf(w, `"%s","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			strings.TrimSpace(monthLabel(startMonth, payment.Month)),
			payment.Payment, payment.Interest, payment.Principal,
			payment.CumulativeInterest, payment.RemainingPrincipal)
		fmt.Fprintf(w, "\n")
	}
}

// PrettyHECM outputs a reverse mortgage summary as a human-readable table.
func PrettyHECM(w io.Writer, scenario hecm.Scenario, result hecm.Result) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Reverse mortgage estimate ---\n")
	_, _ = p.Fprintf(w, "Max claim amount    | $%.2f\n", result.MaxClaimAmount)
	_, _ = p.Fprintf(w, "Principal limit     | $%.2f\n", result.PrincipalLimit)
	_, _ = p.Fprintf(w, "Initial MIP         | $%.2f\n", result.InitialMIP)
	_, _ = p.Fprintf(w, "Origination fee     | $%.2f\n", result.OriginationFee)
	_, _ = p.Fprintf(w, "Net principal limit | $%.2f\n", result.NetPrincipalLimit)
	switch scenario.Disbursement {
	case hecm.Tenure, hecm.Term:
		_, _ = p.Fprintf(w, "Monthly payment     | $%.2f\n", result.MonthlyPayment)
	case hecm.ModifiedTenure, hecm.ModifiedTerm:
		_, _ = p.Fprintf(w, "Line of credit      | $%.2f\n", result.LineOfCredit)
		_, _ = p.Fprintf(w, "Monthly payment     | $%.2f\n", result.MonthlyPayment)
	case hecm.LineOfCredit:
		_, _ = p.Fprintf(w, "Line of credit      | $%.2f\n", result.LineOfCredit)
	default:
		_, _ = p.Fprintf(w, "Cash to borrower    | $%.2f\n", result.CashToBorrower)
	}
	if len(result.Projections) > 0 {
		fmt.Fprintf(w, "\nYear | Line of credit | Loan balance\n")
		fmt.Fprintf(w, "____ | ______________ | ____________\n")
		for _, projection := range result.Projections {
			_, _ = p.Fprintf(w, "%4d | $%.2f | $%.2f\n", projection.Year, projection.LineOfCredit, projection.LoanBalance)
		}
	}
}

// PrettyBreakeven formats a breakeven month count, rendering the
// never-recoups case explicitly.
func PrettyBreakeven(months float64) string {
	if math.IsInf(months, 1) {
		return "never"
	}
	return fmt.Sprintf("%d months", int(months))
}

// ValidateFormat returns an error when the requested output format is not
// supported.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case "pretty", "csv":
		return nil
	}
	return fmt.Errorf("unsupported output format %s", format)
}
