package output

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/loanscope/loan-compare/internal/compare"
	"github.com/loanscope/loan-compare/internal/engine"
	"github.com/loanscope/loan-compare/pkg/amort"
	"github.com/loanscope/loan-compare/pkg/hecm"
)

func sampleResults() []engine.Result {
	return []engine.Result{
		{
			ScenarioName:      "30yr fixed",
			MonthlyPI:         1896.20,
			MonthlyMI:         104.17,
			TotalMonthly:      2400.37,
			TotalClosingCosts: 6500,
			CashToClose:       41500,
			APR:               6.712,
			TotalInterest:     382633.47,
			TotalCost:         395000,
			MIRemovalMonth:    98,
		},
		{
			ScenarioName:      "15yr fixed",
			MonthlyPI:         2613.32,
			TotalMonthly:      3013.32,
			TotalClosingCosts: 5800,
			CashToClose:       40800,
			APR:               6.180,
			TotalInterest:     170397.60,
			TotalCost:         176197.60,
		},
	}
}

func TestPrettyComparison(t *testing.T) {
	results := sampleResults()
	comparison := compare.Results(results)
	var buf bytes.Buffer
	PrettyComparison(&buf, results, comparison)
	out := buf.String()

	for _, want := range []string{
		"--- Results for scenario 30yr fixed ---",
		"--- Results for scenario 15yr fixed ---",
		"drops at month 98",
		"--- Best scenario by metric ---",
		"$2,400.37",
		"6.712%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty comparison missing %q in output:\n%s", want, out)
		}
	}
	// The 15yr scenario wins on total cost.
	if !strings.Contains(out, "totalCost") {
		t.Errorf("expected totalCost row in best-by-metric table:\n%s", out)
	}
}

func TestPrettyComparisonSingleResultOmitsBestTable(t *testing.T) {
	results := sampleResults()[:1]
	var buf bytes.Buffer
	PrettyComparison(&buf, results, compare.Results(results))
	if strings.Contains(buf.String(), "Best scenario") {
		t.Errorf("single result should not emit a best-by-metric table:\n%s", buf.String())
	}
}

func TestCsvComparison(t *testing.T) {
	var buf bytes.Buffer
	CsvComparison(&buf, sampleResults())
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected header plus 8 metric rows, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != `"metric","30yr fixed","15yr fixed"` {
		t.Errorf("unexpected header %q", lines[0])
	}
	for _, line := range lines {
		if strings.Count(line, ",") != 2 {
			t.Errorf("expected 3 columns in line %q", line)
		}
	}
}

func TestPrettyAndCsvSchedule(t *testing.T) {
	schedule := amort.NewScheduleGenerator(nil).Generate(200000, 6.0, 360, amort.Extra{})

	var pretty bytes.Buffer
	PrettySchedule(&pretty, "baseline", schedule, "")
	if !strings.Contains(pretty.String(), "Paid off in 360 months") {
		t.Errorf("pretty schedule missing payoff summary:\n%s", pretty.String())
	}

	var csv bytes.Buffer
	CsvSchedule(&csv, schedule, "")
	lines := strings.Split(strings.TrimSpace(csv.String()), "\n")
	if len(lines) != 361 {
		t.Errorf("expected header plus 360 payment rows, got %d", len(lines))
	}
}

func TestScheduleStartMonthLabels(t *testing.T) {
	schedule := amort.NewScheduleGenerator(nil).Generate(12000, 0, 12, amort.Extra{})

	var pretty bytes.Buffer
	PrettySchedule(&pretty, "short", schedule, "2026-09")
	out := pretty.String()
	for _, date := range []string{"2026-09", "2026-12", "2027-08"} {
		if !strings.Contains(out, date) {
			t.Errorf("expected date label %s in schedule:\n%s", date, out)
		}
	}

	var csv bytes.Buffer
	CsvSchedule(&csv, schedule, "2026-09")
	if !strings.Contains(csv.String(), `"2027-08"`) {
		t.Errorf("expected final date label in CSV:\n%s", csv.String())
	}
}

func TestPrettyHECM(t *testing.T) {
	scenario := hecm.Scenario{
		HomeValue:       450000,
		FHALimit:        1149825,
		PLF:             52.4,
		NoteRate:        6.5,
		Disbursement:    hecm.Tenure,
		ProjectionYears: 5,
	}
	result, err := hecm.Compute(scenario)
	if err != nil {
		t.Fatalf("hecm.Compute: %v", err)
	}
	var buf bytes.Buffer
	PrettyHECM(&buf, scenario, result)
	out := buf.String()
	for _, want := range []string{"Principal limit", "Monthly payment", "Line of credit | Loan balance"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty HECM missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Cash to borrower") {
		t.Errorf("tenure disbursement should not print a lump sum:\n%s", out)
	}
}

func TestPrettyBreakeven(t *testing.T) {
	if got := PrettyBreakeven(14); got != "14 months" {
		t.Errorf("PrettyBreakeven(14) = %q", got)
	}
	if got := PrettyBreakeven(math.Inf(1)); got != "never" {
		t.Errorf("PrettyBreakeven(+Inf) = %q", got)
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"pretty", "csv", "Pretty", "CSV"} {
		if err := ValidateFormat(format); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, want nil", format, err)
		}
	}
	if err := ValidateFormat("xml"); err == nil {
		t.Errorf("ValidateFormat(xml) should fail")
	}
}
