package programs

import "github.com/loanscope/loan-compare/pkg/constants"

// LoanProgram identifies affordable-lending programs that discount
// conventional PMI rates.
type LoanProgram string

const (
	ProgramStandard     LoanProgram = "standard"
	ProgramHomeReady    LoanProgram = "homeready"
	ProgramHomePossible LoanProgram = "homepossible"
	ProgramFirstTime    LoanProgram = "firsttime"
	ProgramAffordable   LoanProgram = "affordable"
)

// PMIResult describes the conventional mortgage insurance requirement for a
// loan.
type PMIResult struct {
	Required   bool
	AnnualRate float64 // percent
	Monthly    float64
}

// pmiRateTable holds estimated annual PMI rates in percent, indexed by LTV
// band (rows: >95, >90, >85, <=85) and credit score tier (columns: >=760,
// >=740, >=720, >=700, >=680, <680).
var pmiRateTable = [4][6]float64{
	{0.58, 0.70, 0.87, 0.99, 1.21, 1.85}, // LTV > 95
	{0.38, 0.53, 0.66, 0.78, 0.96, 1.45}, // LTV > 90
	{0.28, 0.38, 0.46, 0.55, 0.68, 1.05}, // LTV > 85
	{0.19, 0.23, 0.27, 0.31, 0.38, 0.60}, // LTV <= 85
}

// EffectiveScore returns the representative credit score for PMI pricing:
// the lower score when two borrowers are present.
func EffectiveScore(scores ...int) int {
	effective := 0
	for _, s := range scores {
		if s <= 0 {
			continue
		}
		if effective == 0 || s < effective {
			effective = s
		}
	}
	return effective
}

func pmiScoreTier(score int) int {
	switch {
	case score >= 760:
		return 0
	case score >= 740:
		return 1
	case score >= 720:
		return 2
	case score >= 700:
		return 3
	case score >= 680:
		return 4
	default:
		return 5
	}
}

func pmiLTVBand(ltv float64) int {
	switch {
	case ltv > 95:
		return 0
	case ltv > 90:
		return 1
	case ltv > 85:
		return 2
	default:
		return 3
	}
}

// PMIRate estimates the annual PMI rate in percent for the given LTV, credit
// score, and loan program. Affordable-lending programs carry rate discounts:
// HomeReady and HomePossible get 25% off, other affordable programs 20% off.
func PMIRate(ltv float64, score int, program LoanProgram) float64 {
	rate := pmiRateTable[pmiLTVBand(ltv)][pmiScoreTier(score)]
	switch program {
	case ProgramHomeReady, ProgramHomePossible:
		rate *= 0.75
	case ProgramAffordable:
		rate *= 0.80
	}
	return rate
}

// ConventionalPMI determines whether PMI is required and, if so, its cost.
// PMI is not required at or below 80% LTV. An explicit override rate wins
// over the estimated rate table.
func ConventionalPMI(loanAmount, homePrice float64, scores []int, program LoanProgram, overrideRatePercent float64) PMIResult {
	if homePrice <= 0 {
		return PMIResult{}
	}

	ltv := loanAmount / homePrice * constants.PercentageMultiplier
	if ltv <= constants.PMICutoffLTV {
		return PMIResult{}
	}

	rate := overrideRatePercent
	if rate == 0 {
		rate = PMIRate(ltv, EffectiveScore(scores...), program)
	}

	return PMIResult{
		Required:   true,
		AnnualRate: rate,
		Monthly:    loanAmount * rate / constants.PercentageMultiplier / constants.MonthsPerYear,
	}
}
