// Package constants provides shared constants for the loan-compare application.
package constants

// DateTimeLayout is the month format used for schedule labels and is also the
// output date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day-count basis for prepaid interest
	DaysPerYear = 365

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Loan program constants
const (
	// PMICutoffLTV is the loan-to-value percentage at or below which
	// conventional mortgage insurance is not required
	PMICutoffLTV = 80.0

	// MortgageInsuranceRemovalLTV is the LTV at which conventional mortgage
	// insurance terminates automatically as the balance amortizes down
	MortgageInsuranceRemovalLTV = 78.0

	// HECMInitialMIPRate is the upfront HECM mortgage insurance premium as a
	// percentage of the max claim amount
	HECMInitialMIPRate = 2.0

	// HECMOriginationFeeCap is the regulatory cap on HECM origination fees
	HECMOriginationFeeCap = 6000.0

	// HECMOriginationFeeFloor is the minimum HECM origination fee for small
	// max claim amounts
	HECMOriginationFeeFloor = 2500.0

	// HECMGrowthMIPSpread is the annual MIP accrual added to the note rate
	// when projecting line-of-credit and balance growth, in percent
	HECMGrowthMIPSpread = 0.5

	// HECMTenureHorizonMonths is the assumed annuity horizon for tenure
	// payment sizing
	HECMTenureHorizonMonths = 240

	// HECMTenureScaleFactor conservatively scales the tenure annuity payment
	HECMTenureScaleFactor = 0.5
)

// APR solver constants
const (
	// APRMaxIterations caps the Newton-Raphson iteration count
	APRMaxIterations = 100

	// APRTolerance is the present-value convergence tolerance in dollars
	APRTolerance = 0.01

	// APRMinRate is the lower clamp on the solved annual rate (decimal form)
	APRMinRate = 0.001

	// APRMaxRate is the upper clamp on the solved annual rate (decimal form)
	APRMaxRate = 0.5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultStoreFile is the default SQLite scenario store file name
	DefaultStoreFile = "loan-compare.sqlite"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestBytes int64 = 256 * 1024
)

// Envelope constants for persisted scenario documents
const (
	// EnvelopeType identifies exported scenario documents
	EnvelopeType = "loan-compare/scenarios"

	// EnvelopeVersion is the current envelope schema version
	EnvelopeVersion = 1
)
