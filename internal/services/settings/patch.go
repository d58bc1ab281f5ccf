package settings

import (
	"regexp"
	"strings"

	"sebengine/internal/models"

	"github.com/shopspring/decimal"
)

// FieldValue is raw admin input for a numeric field.
type FieldValue = models.NumericText

// Patch is a set of field edits applied to a draft. Nil fields are left alone.
type Patch struct {
	MinBilling      *FieldValue `json:"minBilling"`
	SellRatePercent *FieldValue `json:"sellRatePercent"`
	PGAMultiplier   *FieldValue `json:"pgaMultiplier"`
	AssetReference  *string     `json:"assetReference"`
}

// apply edits s in place. Unparsable amounts become zero and an unparsable
// or zero multiplier becomes one, the same way the admin form has always
// coerced input. Range checks happen at commit.
func (p Patch) apply(s *models.Settings) {
	if p.MinBilling != nil {
		s.MinBilling = coerceAmount(*p.MinBilling)
	}
	if p.SellRatePercent != nil {
		s.SellRatePercent = coerceAmount(*p.SellRatePercent)
	}
	if p.PGAMultiplier != nil {
		s.PGAMultiplier = coerceMultiplier(*p.PGAMultiplier)
	}
	if p.AssetReference != nil {
		s.AssetReference = strings.TrimSpace(*p.AssetReference)
	}
}

// maxFieldLength bounds the text accepted for one numeric field.
const maxFieldLength = 32

// maxMultiplier is the largest multiplier kept by coercion. Larger values
// count as unparsable.
const maxMultiplier = 1_000_000

// plainNumber matches signed decimal text without exponents.
var plainNumber = regexp.MustCompile(`^[+-]?\d*\.?\d*$`)

func parseField(v FieldValue) (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(v))
	if s == "" || len(s) > maxFieldLength || !plainNumber.MatchString(s) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func coerceAmount(v FieldValue) decimal.Decimal {
	d, _ := parseField(v)
	return d
}

func coerceMultiplier(v FieldValue) int {
	d, ok := parseField(v)
	if !ok || d.Abs().GreaterThan(decimal.NewFromInt(maxMultiplier)) {
		return 1
	}
	n := d.Truncate(0).IntPart()
	if n == 0 {
		return 1
	}
	return int(n)
}
