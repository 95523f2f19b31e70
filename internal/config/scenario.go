package config

import (
	"fmt"

	"github.com/loanscope/loan-compare/internal/engine"
	"github.com/loanscope/loan-compare/pkg/closing"
	"github.com/loanscope/loan-compare/pkg/hecm"
	"github.com/loanscope/loan-compare/pkg/programs"
)

// ScenarioConfig is the raw form-field record for one loan scenario. Every
// loan type's block is present; only the block matching LoanType is
// meaningful. Zero-valued fields take documented defaults via applyDefaults.
type ScenarioConfig struct {
	Name        string
	LoanType    string `yaml:"loanType"`
	LoanProgram string `yaml:"loanProgram,omitempty"`
	Transaction string `yaml:"transaction,omitempty"`

	HomePrice    float64 `yaml:"homePrice"`
	LoanAmount   float64 `yaml:"loanAmount,omitempty"`
	DownPayment  float64 `yaml:"downPayment,omitempty"`
	InterestRate float64 `yaml:"interestRate"`
	TermYears    int     `yaml:"termYears,omitempty"`
	CreditScores []int   `yaml:"creditScores,omitempty"`

	CashOut float64 `yaml:"cashOut,omitempty"`

	Conventional ConventionalConfig `yaml:"conventional,omitempty"`
	FHA          FHAConfig          `yaml:"fha,omitempty"`
	VA           VAConfig           `yaml:"va,omitempty"`
	USDA         USDAConfig         `yaml:"usda,omitempty"`
	ARM          ARMConfig          `yaml:"arm,omitempty"`

	Fees     FeesConfig     `yaml:"fees,omitempty"`
	Credits  CreditsConfig  `yaml:"credits,omitempty"`
	Prepaids PrepaidsConfig `yaml:"prepaids,omitempty"`
	Points   PointsConfig   `yaml:"points,omitempty"`
}

// ConventionalConfig carries the conventional PMI override.
type ConventionalConfig struct {
	PMIRate float64 `yaml:"pmiRate,omitempty"` // annual percent; 0 = estimate
}

// FHAConfig carries FHA mortgage insurance premium rates.
type FHAConfig struct {
	UpfrontMIPRate float64 `yaml:"upfrontMipRate,omitempty"`
	AnnualMIPRate  float64 `yaml:"annualMipRate,omitempty"`
}

// VAConfig carries the VA funding-fee inputs.
type VAConfig struct {
	Exempt         bool    `yaml:"exempt,omitempty"`
	FirstTimeUse   bool    `yaml:"firstTimeUse,omitempty"`
	ServiceType    string  `yaml:"serviceType,omitempty"`
	FundingFeeRate float64 `yaml:"fundingFeeRate,omitempty"` // override percent
}

// USDAConfig carries USDA guarantee fee rates.
type USDAConfig struct {
	UpfrontRate float64 `yaml:"upfrontRate,omitempty"`
	AnnualRate  float64 `yaml:"annualRate,omitempty"`
}

// ARMConfig carries adjustable-rate terms as fixedYears/adjustmentYears.
type ARMConfig struct {
	FixedYears      int     `yaml:"fixedYears,omitempty"`
	AdjustmentYears int     `yaml:"adjustmentYears,omitempty"`
	InitialRate     float64 `yaml:"initialRate,omitempty"`
	IndexRate       float64 `yaml:"indexRate,omitempty"`
	Margin          float64 `yaml:"margin,omitempty"`
	InitialCap      float64 `yaml:"initialCap,omitempty"`
	PeriodicCap     float64 `yaml:"periodicCap,omitempty"`
	LifetimeCap     float64 `yaml:"lifetimeCap,omitempty"`
}

// FeeItemConfig is a named currency amount.
type FeeItemConfig struct {
	Name   string  `yaml:"name"`
	Amount float64 `yaml:"amount"`
}

// FeesConfig groups the fee line items by category.
type FeesConfig struct {
	Lender          []FeeItemConfig `yaml:"lender,omitempty"`
	ThirdParty      []FeeItemConfig `yaml:"thirdParty,omitempty"`
	TitleGovernment []FeeItemConfig `yaml:"titleGovernment,omitempty"`
	Other           []FeeItemConfig `yaml:"other,omitempty"`
	Custom          []FeeItemConfig `yaml:"custom,omitempty"`
}

// CreditsConfig groups the credit amounts.
type CreditsConfig struct {
	Lender float64 `yaml:"lender,omitempty"`
	Seller float64 `yaml:"seller,omitempty"`
	Other  float64 `yaml:"other,omitempty"`
}

// PrepaidsConfig groups escrow and prepaid-interest inputs.
type PrepaidsConfig struct {
	AnnualTaxes           float64 `yaml:"annualTaxes,omitempty"`
	AnnualInsurance       float64 `yaml:"annualInsurance,omitempty"`
	MonthlyHOA            float64 `yaml:"monthlyHoa,omitempty"`
	TaxEscrowMonths       int     `yaml:"taxEscrowMonths,omitempty"`
	InsuranceEscrowMonths int     `yaml:"insuranceEscrowMonths,omitempty"`
	PrepaidInterestDays   int     `yaml:"prepaidInterestDays,omitempty"`
}

// PointsConfig carries the discount-points flag and percentage.
type PointsConfig struct {
	Enabled bool    `yaml:"enabled,omitempty"`
	Percent float64 `yaml:"percent,omitempty"`
}

// HECMConfig is the raw form-field record for reverse-mortgage sizing.
type HECMConfig struct {
	HomeValue              float64 `yaml:"homeValue"`
	FHALimit               float64 `yaml:"fhaLimit,omitempty"`
	PLF                    float64 `yaml:"plf"`
	NoteRate               float64 `yaml:"noteRate,omitempty"`
	LenderCredit           float64 `yaml:"lenderCredit,omitempty"`
	ThirdPartyCosts        float64 `yaml:"thirdPartyCosts,omitempty"`
	ExistingMortgagePayoff float64 `yaml:"existingMortgagePayoff,omitempty"`
	Disbursement           string  `yaml:"disbursement,omitempty"`
	TermYears              int     `yaml:"termYears,omitempty"`
	ProjectionYears        int     `yaml:"projectionYears,omitempty"`
}

// Default values for unset form fields. A zero in these fields means "use
// the default"; a scenario that genuinely needs a zero (e.g. no escrow)
// carries an explicit negative-free structure elsewhere.
const (
	defaultTermYears             = 30
	defaultCreditScore           = 740
	defaultFHAUpfrontRate        = 1.75
	defaultFHAAnnualRate         = 0.55
	defaultUSDAUpfrontRate       = 1.0
	defaultUSDAAnnualRate        = 0.35
	defaultARMAdjustmentYears    = 1
	defaultHECMFHALimit          = 1149825
	defaultHECMNoteRate          = 6.5
	defaultHECMDisbursement      = string(hecm.LumpSum)
	defaultHECMProjectionYears   = 10
	defaultTransaction           = string(engine.Purchase)
	defaultLoanProgram           = string(programs.ProgramStandard)
	defaultVAServiceType         = string(programs.ServiceRegular)
	defaultPrepaidInterestDays   = 15
	defaultTaxEscrowMonths       = 3
	defaultInsuranceEscrowMonths = 2
)

func (sc *ScenarioConfig) applyDefaults() {
	if sc.Transaction == "" {
		sc.Transaction = defaultTransaction
	}
	if sc.LoanProgram == "" {
		sc.LoanProgram = defaultLoanProgram
	}
	if sc.TermYears == 0 {
		sc.TermYears = defaultTermYears
	}
	if len(sc.CreditScores) == 0 {
		sc.CreditScores = []int{defaultCreditScore}
	}
	if sc.LoanAmount == 0 && sc.Transaction == string(engine.Purchase) {
		sc.LoanAmount = sc.HomePrice - sc.DownPayment
	}
	if sc.VA.ServiceType == "" {
		sc.VA.ServiceType = defaultVAServiceType
	}
	if sc.LoanType == "fha" {
		if sc.FHA.UpfrontMIPRate == 0 {
			sc.FHA.UpfrontMIPRate = defaultFHAUpfrontRate
		}
		if sc.FHA.AnnualMIPRate == 0 {
			sc.FHA.AnnualMIPRate = defaultFHAAnnualRate
		}
	}
	if sc.LoanType == "usda" {
		if sc.USDA.UpfrontRate == 0 {
			sc.USDA.UpfrontRate = defaultUSDAUpfrontRate
		}
		if sc.USDA.AnnualRate == 0 {
			sc.USDA.AnnualRate = defaultUSDAAnnualRate
		}
	}
	if sc.LoanType == "arm" {
		if sc.ARM.AdjustmentYears == 0 {
			sc.ARM.AdjustmentYears = defaultARMAdjustmentYears
		}
		if sc.ARM.InitialRate == 0 {
			sc.ARM.InitialRate = sc.InterestRate
		}
	}
	if sc.Prepaids.TaxEscrowMonths == 0 {
		sc.Prepaids.TaxEscrowMonths = defaultTaxEscrowMonths
	}
	if sc.Prepaids.InsuranceEscrowMonths == 0 {
		sc.Prepaids.InsuranceEscrowMonths = defaultInsuranceEscrowMonths
	}
	if sc.Prepaids.PrepaidInterestDays == 0 {
		sc.Prepaids.PrepaidInterestDays = defaultPrepaidInterestDays
	}
}

func (hc *HECMConfig) applyDefaults() {
	if hc.FHALimit == 0 {
		hc.FHALimit = defaultHECMFHALimit
	}
	if hc.NoteRate == 0 {
		hc.NoteRate = defaultHECMNoteRate
	}
	if hc.Disbursement == "" {
		hc.Disbursement = defaultHECMDisbursement
	}
	if hc.ProjectionYears == 0 {
		hc.ProjectionYears = defaultHECMProjectionYears
	}
}

func feeItems(items []FeeItemConfig) []closing.FeeItem {
	if len(items) == 0 {
		return nil
	}
	converted := make([]closing.FeeItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, closing.FeeItem{Name: item.Name, Amount: item.Amount})
	}
	return converted
}

// Build converts the raw form fields into an engine scenario, selecting the
// program block named by the loan-type tag.
func (sc ScenarioConfig) Build() (engine.Scenario, error) {
	var program engine.Program
	switch sc.LoanType {
	case "conventional":
		program = engine.Conventional{PMIRateOverride: sc.Conventional.PMIRate}
	case "fha":
		program = engine.FHA{UpfrontMIPRate: sc.FHA.UpfrontMIPRate, AnnualMIPRate: sc.FHA.AnnualMIPRate}
	case "va":
		program = engine.VA{
			Exempt:             sc.VA.Exempt,
			FirstTimeUse:       sc.VA.FirstTimeUse,
			Service:            programs.ServiceType(sc.VA.ServiceType),
			FundingFeeOverride: sc.VA.FundingFeeRate,
		}
	case "usda":
		program = engine.USDA{UpfrontRate: sc.USDA.UpfrontRate, AnnualRate: sc.USDA.AnnualRate}
	case "arm":
		program = engine.ARM{Terms: programs.ARMTerms{
			FixedYears:      sc.ARM.FixedYears,
			AdjustmentYears: sc.ARM.AdjustmentYears,
			InitialRate:     sc.ARM.InitialRate,
			IndexRate:       sc.ARM.IndexRate,
			Margin:          sc.ARM.Margin,
			InitialCap:      sc.ARM.InitialCap,
			PeriodicCap:     sc.ARM.PeriodicCap,
			LifetimeCap:     sc.ARM.LifetimeCap,
		}}
	default:
		return engine.Scenario{}, fmt.Errorf("scenario %s: unknown loan type %q", sc.Name, sc.LoanType)
	}

	return engine.Scenario{
		Name:          sc.Name,
		Transaction:   engine.TransactionType(sc.Transaction),
		HomePrice:     sc.HomePrice,
		LoanAmount:    sc.LoanAmount,
		DownPayment:   sc.DownPayment,
		InterestRate:  sc.InterestRate,
		TermYears:     sc.TermYears,
		CreditScores:  sc.CreditScores,
		LoanProgram:   programs.LoanProgram(sc.LoanProgram),
		CashOutAmount: sc.CashOut,
		Program:       program,
		Fees: closing.Sheet{
			LenderFees:            feeItems(sc.Fees.Lender),
			ThirdPartyFees:        feeItems(sc.Fees.ThirdParty),
			TitleGovernmentFees:   feeItems(sc.Fees.TitleGovernment),
			OtherFees:             feeItems(sc.Fees.Other),
			CustomFees:            feeItems(sc.Fees.Custom),
			LenderCredit:          sc.Credits.Lender,
			SellerCredit:          sc.Credits.Seller,
			OtherCredits:          sc.Credits.Other,
			DiscountPoints:        sc.Points.Enabled,
			PointsPercent:         sc.Points.Percent,
			AnnualTaxes:           sc.Prepaids.AnnualTaxes,
			AnnualInsurance:       sc.Prepaids.AnnualInsurance,
			MonthlyHOA:            sc.Prepaids.MonthlyHOA,
			TaxEscrowMonths:       sc.Prepaids.TaxEscrowMonths,
			InsuranceEscrowMonths: sc.Prepaids.InsuranceEscrowMonths,
			PrepaidInterestDays:   sc.Prepaids.PrepaidInterestDays,
		},
	}, nil
}

// BuildHECM converts the raw HECM form fields into a sizing scenario.
func (hc HECMConfig) BuildHECM() hecm.Scenario {
	return hecm.Scenario{
		HomeValue:              hc.HomeValue,
		FHALimit:               hc.FHALimit,
		PLF:                    hc.PLF,
		NoteRate:               hc.NoteRate,
		LenderCredit:           hc.LenderCredit,
		ThirdPartyCosts:        hc.ThirdPartyCosts,
		ExistingMortgagePayoff: hc.ExistingMortgagePayoff,
		Disbursement:           hecm.Disbursement(hc.Disbursement),
		TermYears:              hc.TermYears,
		ProjectionYears:        hc.ProjectionYears,
	}
}
