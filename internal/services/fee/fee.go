// Package fee computes the single-entry-bond liability and sell value
// from cargo values and the committed fee settings.
package fee

import (
	"regexp"
	"strings"

	"sebengine/internal/models"

	"github.com/shopspring/decimal"
)

// SellPrecision is the number of fractional digits the sell value is shown with.
const SellPrecision = 6

// MaxAmountLength bounds the text of one amount field. Longer input counts
// as malformed.
const MaxAmountLength = 32

// plainAmount matches unsigned decimal text. Exponent notation is malformed.
var plainAmount = regexp.MustCompile(`^\d*\.?\d*$`)

// Mode selects which pair of inputs feeds the bond total.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModePGA      Mode = "pga"
)

// ParseMode maps a mode name to a Mode. Anything unrecognised is standard.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pga", "with":
		return ModePGA
	default:
		return ModeStandard
	}
}

// Inputs are the raw values of the four bond fields. Each decodes from a
// JSON string or number.
type Inputs struct {
	InvoiceValue       models.NumericText `json:"invoiceValue"`
	DutiesValue        models.NumericText `json:"dutiesValue"`
	PGAInvoiceValue    models.NumericText `json:"pgaInvoiceValue"`
	NonPGAInvoiceValue models.NumericText `json:"nonPgaInvoiceValue"`
}

// Result is the derived fee quote. SellValue keeps full precision.
type Result struct {
	Mode           Mode
	TotalBondValue decimal.Decimal
	SellValue      decimal.Decimal
	IsBelowMin     bool
}

// TotalBondValueText is the liability total as a plain decimal string.
func (r Result) TotalBondValueText() string {
	return r.TotalBondValue.String()
}

// SellValueText is the sell value with exactly SellPrecision fractional digits.
func (r Result) SellValueText() string {
	return r.SellValue.StringFixed(SellPrecision)
}

// ParseAmount reads plain non-negative decimal text. Blank, malformed,
// signed, exponent and over-long values count as zero.
func ParseAmount(v models.NumericText) decimal.Decimal {
	s := strings.TrimSpace(string(v))
	if s == "" || len(s) > MaxAmountLength || !plainAmount.MatchString(s) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Compute derives the quote for the active mode. Only the two fields that
// belong to mode are read.
func Compute(mode Mode, in Inputs, s models.Settings) Result {
	var total decimal.Decimal
	switch mode {
	case ModePGA:
		pga := ParseAmount(in.PGAInvoiceValue)
		nonPGA := ParseAmount(in.NonPGAInvoiceValue)
		total = pga.Mul(decimal.NewFromInt(int64(s.PGAMultiplier))).Add(nonPGA)
	default:
		mode = ModeStandard
		total = ParseAmount(in.InvoiceValue).Add(ParseAmount(in.DutiesValue))
	}

	sell := SellValue(total, s.SellRatePercent)

	return Result{
		Mode:           mode,
		TotalBondValue: total,
		SellValue:      sell,
		IsBelowMin:     total.IsPositive() && sell.LessThan(s.MinBilling),
	}
}

// SellValue applies a percentage rate to a bond total. The result is exact.
func SellValue(total, ratePercent decimal.Decimal) decimal.Decimal {
	return total.Mul(ratePercent).Shift(-2)
}
