package engine

import (
	"fmt"

	"github.com/loanscope/loan-compare/pkg/amort"
	"github.com/loanscope/loan-compare/pkg/apr"
	"github.com/loanscope/loan-compare/pkg/closing"
	"github.com/loanscope/loan-compare/pkg/constants"
	"github.com/loanscope/loan-compare/pkg/hecm"
	"github.com/loanscope/loan-compare/pkg/programs"
	"go.uber.org/zap"
)

// Engine computes loan results. It holds no mutable state; every computation
// is a pure function of its scenario.
type Engine struct {
	logger *zap.Logger
}

// New creates an engine instance.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// programCosts is the per-program slice of a computation: recurring mortgage
// insurance, the upfront program fee, and how long the insurance runs.
type programCosts struct {
	monthlyMI      float64
	upfrontFee     float64
	miMonths       int
	miRemovalMonth int
	armOutlook     *ARMOutlook
}

// Compute derives the complete cost breakdown for a scenario. The only error
// condition is an unknown program variant; numeric edge cases produce defined
// values, never errors.
func (e *Engine) Compute(s Scenario) (Result, error) {
	termMonths := s.TermMonths()
	noteRate := s.NoteRate()

	payment := amort.MonthlyPayment(s.LoanAmount, noteRate, termMonths)

	costs, err := e.resolveProgram(s, termMonths)
	if err != nil {
		return Result{}, err
	}

	refinance := s.Transaction == Refinance
	breakdown := closing.Aggregate(s.LoanAmount, noteRate, s.DownPayment, refinance, s.CashOutAmount, costs.upfrontFee, s.Fees)

	var totalInterest float64
	if arm, ok := s.Program.(ARM); ok {
		totalInterest = arm.Terms.TotalInterest(s.LoanAmount, s.TermYears)
	} else {
		totalInterest = amort.TotalInterest(s.LoanAmount, noteRate, termMonths)
	}

	result := Result{
		ScenarioName:      s.Name,
		LoanType:          s.Program.Label(),
		MonthlyPI:         payment,
		MonthlyMI:         costs.monthlyMI,
		MonthlyTaxes:      s.Fees.AnnualTaxes / constants.MonthsPerYear,
		MonthlyInsurance:  s.Fees.AnnualInsurance / constants.MonthsPerYear,
		MonthlyHOA:        s.Fees.MonthlyHOA,
		TotalClosingCosts: breakdown.TotalClosingCosts,
		TotalPrepaids:     breakdown.TotalPrepaids,
		TotalCredits:      breakdown.TotalCredits,
		NetFees:           breakdown.NetFees,
		CashToClose:       breakdown.CashToClose,
		APR:               apr.Solve(payment, s.LoanAmount, breakdown.FinanceCharges(s.Fees), termMonths),
		TotalInterest:     totalInterest,
		MIRemovalMonth:    costs.miRemovalMonth,
		ItemizedFees:      breakdown.Itemized,
		ARM:               costs.armOutlook,
	}

	result.TotalMonthly = result.MonthlyPI + result.MonthlyMI + result.MonthlyTaxes +
		result.MonthlyInsurance + result.MonthlyHOA
	result.TotalCost = result.TotalInterest + result.MonthlyMI*float64(costs.miMonths) + result.NetFees

	e.logger.Debug(fmt.Sprintf("computed %s scenario %s: payment %.2f, LTV %.1f%%, APR %.3f",
		result.LoanType, s.Name, result.MonthlyPI, s.LTV(), result.APR),
		zap.String("op", "engine.Compute"),
	)

	return result, nil
}

// resolveProgram dispatches on the program variant. The type switch is
// exhaustive over the known variants; anything else is an error.
func (e *Engine) resolveProgram(s Scenario, termMonths int) (programCosts, error) {
	var costs programCosts

	switch p := s.Program.(type) {
	case Conventional:
		pmi := programs.ConventionalPMI(s.LoanAmount, s.HomePrice, s.CreditScores, s.LoanProgram, p.PMIRateOverride)
		costs.monthlyMI = pmi.Monthly
		if pmi.Required {
			costs.miRemovalMonth = e.miRemovalMonth(s, termMonths)
			costs.miMonths = costs.miRemovalMonth
		}

	case FHA:
		costs.upfrontFee = programs.FHAUpfrontMIP(s.LoanAmount, p.UpfrontMIPRate)
		costs.monthlyMI = programs.FHAMonthlyMIP(s.LoanAmount, p.AnnualMIPRate)
		costs.miMonths = termMonths

	case VA:
		fee, rate := programs.VAFundingFee(s.LoanAmount, programs.VAParams{
			Exempt:              p.Exempt,
			OverrideRatePercent: p.FundingFeeOverride,
			FirstTimeUse:        p.FirstTimeUse,
			Service:             p.Service,
			Refinance:           s.Transaction == Refinance,
			CashOutAmount:       s.CashOutAmount,
			DownPaymentPercent:  s.DownPaymentPercent(),
		})
		costs.upfrontFee = fee
		if fee > 0 {
			e.logger.Debug(fmt.Sprintf("VA funding fee %.2f at %.2f%% for scenario %s", fee, rate, s.Name),
				zap.String("op", "engine.resolveProgram"),
			)
		}

	case USDA:
		costs.upfrontFee = programs.USDAUpfrontFee(s.LoanAmount, p.UpfrontRate)
		costs.monthlyMI = programs.USDAMonthlyFee(s.LoanAmount, p.AnnualRate)
		costs.miMonths = termMonths

	case ARM:
		// ARMs carry conventionally priced PMI; the rate table has no
		// ARM-specific column.
		pmi := programs.ConventionalPMI(s.LoanAmount, s.HomePrice, s.CreditScores, s.LoanProgram, 0)
		costs.monthlyMI = pmi.Monthly
		if pmi.Required {
			costs.miRemovalMonth = e.miRemovalMonth(s, termMonths)
			costs.miMonths = costs.miRemovalMonth
		}
		proj := p.Terms.Projection()
		costs.armOutlook = &ARMOutlook{
			FullyIndexedRate:       proj.FullyIndexedRate,
			WorstCaseRate:          proj.WorstCaseRate,
			FirstAdjustmentMaxRate: proj.FirstAdjustmentMaxRate,
			PeriodicMaxStep:        proj.PeriodicMaxStep,
		}

	case nil:
		return costs, fmt.Errorf("scenario %s has no loan program", s.Name)

	default:
		return costs, fmt.Errorf("unsupported loan program %T", s.Program)
	}

	return costs, nil
}

// miRemovalMonth walks the amortization schedule and returns the first month
// at which the balance drops to the automatic-termination LTV.
func (e *Engine) miRemovalMonth(s Scenario, termMonths int) int {
	if s.HomePrice <= 0 {
		return termMonths
	}
	cutoffBalance := s.HomePrice * constants.MortgageInsuranceRemovalLTV / constants.PercentageMultiplier

	schedule := amort.BuildSchedule(s.LoanAmount, s.NoteRate(), termMonths, amort.Extra{})
	for _, p := range schedule.Payments {
		if p.RemainingPrincipal <= cutoffBalance {
			return p.Month
		}
	}
	return termMonths
}

// ComputeHECM sizes a reverse mortgage. It is a thin facade over the hecm
// package so hosts have a single engine entry point.
func (e *Engine) ComputeHECM(s hecm.Scenario) (hecm.Result, error) {
	result, err := hecm.Compute(s)
	if err != nil {
		return result, err
	}
	e.logger.Debug(fmt.Sprintf("computed HECM sizing: principal limit %.2f, net %.2f",
		result.PrincipalLimit, result.NetPrincipalLimit),
		zap.String("op", "engine.ComputeHECM"),
	)
	return result, nil
}
