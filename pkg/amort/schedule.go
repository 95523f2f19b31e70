package amort

import (
	"fmt"

	"github.com/loanscope/loan-compare/pkg/mathutil"
	"go.uber.org/zap"
)

// Payment holds the values for a given month of a schedule.
type Payment struct {
	Month              int
	Payment            float64
	Interest           float64
	Principal          float64
	RemainingPrincipal float64
	CumulativeInterest float64
}

// Extra describes optional extra principal payments applied to a schedule:
// a constant amount added every month and a one-time amount applied at a
// specific month (1-based).
type Extra struct {
	Monthly float64
	Amount  float64
	AtMonth int
}

// Schedule is a complete month-by-month amortization of a loan.
type Schedule struct {
	Payments      []Payment
	PayoffMonth   int
	TotalInterest float64
	TotalPaid     float64
}

// ScheduleGenerator builds amortization schedules.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// Generate creates a complete amortization schedule. Extra principal payments
// shorten the schedule; the payoff month is the first month the balance
// reaches zero, independent of the nominal term.
func (g *ScheduleGenerator) Generate(principal, annualRatePercent float64, termMonths int, extra Extra) Schedule {
	schedule := BuildSchedule(principal, annualRatePercent, termMonths, extra)
	if schedule.PayoffMonth > 0 && schedule.PayoffMonth < termMonths {
		g.logger.Debug(fmt.Sprintf("schedule pays off early at month %d of %d", schedule.PayoffMonth, termMonths),
			zap.String("op", "amort.Generate"),
		)
	}
	return schedule
}

// BuildSchedule is the pure schedule walker: interest accrues on the running
// balance, the principal portion is the payment less interest plus any extra,
// and the principal portion is clamped so the balance never goes negative.
func BuildSchedule(principal, annualRatePercent float64, termMonths int, extra Extra) Schedule {
	var schedule Schedule
	if principal <= 0 || termMonths <= 0 {
		return schedule
	}

	monthlyPayment := MonthlyPayment(principal, annualRatePercent, termMonths)
	balance := principal
	cumulativeInterest := 0.0

	for month := 1; month <= termMonths; month++ {
		interest := InterestPayment(balance, annualRatePercent)
		extraPrincipal := extra.Monthly
		if extra.AtMonth == month {
			extraPrincipal += extra.Amount
		}

		principalPaid := monthlyPayment - interest + extraPrincipal
		if principalPaid > balance {
			principalPaid = balance
		}

		balance -= principalPaid
		if mathutil.IsZero(mathutil.Round(balance)) {
			// We will get machine error otherwise so just set to 0.
			balance = 0.00
		}

		cumulativeInterest += interest
		schedule.Payments = append(schedule.Payments, Payment{
			Month:              month,
			Payment:            principalPaid + interest,
			Interest:           interest,
			Principal:          principalPaid,
			RemainingPrincipal: balance,
			CumulativeInterest: cumulativeInterest,
		})
		schedule.TotalPaid += principalPaid + interest

		if balance == 0 {
			schedule.PayoffMonth = month
			break
		}
	}

	schedule.TotalInterest = cumulativeInterest
	if schedule.PayoffMonth == 0 {
		schedule.PayoffMonth = len(schedule.Payments)
	}
	return schedule
}

// RemainingBalance returns the balance after the given number of months of
// regular payments, without materializing the full schedule.
func RemainingBalance(principal, annualRatePercent float64, termMonths, afterMonths int) float64 {
	if afterMonths <= 0 {
		return principal
	}
	if afterMonths >= termMonths {
		return 0
	}

	monthlyPayment := MonthlyPayment(principal, annualRatePercent, termMonths)
	balance := principal
	for month := 1; month <= afterMonths; month++ {
		interest := InterestPayment(balance, annualRatePercent)
		principalPaid := monthlyPayment - interest
		if principalPaid > balance {
			principalPaid = balance
		}
		balance -= principalPaid
	}
	if balance < 0 {
		balance = 0
	}
	return balance
}
