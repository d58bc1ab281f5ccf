package fee

import (
	"fmt"

	"sebengine/internal/models"
)

const (
	currencyPrefix       = "$"
	standardLogicBanner  = "Standard Multiplier Logic Active"
	minimumAppliesBanner = "Minimum Billing Applies: " + currencyPrefix
)

// Quote is the output surface for one computation.
type Quote struct {
	Mode           Mode   `json:"mode"`
	TotalBondValue string `json:"totalBondValue"`
	SellValue      string `json:"sellValue"`
	IsBelowMin     bool   `json:"isBelowMin"`
	Advisory       string `json:"advisory"`
	CopyText       string `json:"copyText"`
	MinimumNote    string `json:"minimumNote"`
	PGANote        string `json:"pgaNote"`
}

// Present formats a result for display.
func Present(r Result, s models.Settings) Quote {
	sell := r.SellValueText()

	advisory := standardLogicBanner
	if r.IsBelowMin {
		advisory = minimumAppliesBanner + s.MinBilling.StringFixed(2)
	}

	return Quote{
		Mode:           r.Mode,
		TotalBondValue: r.TotalBondValueText(),
		SellValue:      sell,
		IsBelowMin:     r.IsBelowMin,
		Advisory:       advisory,
		CopyText:       currencyPrefix + sell,
		MinimumNote: fmt.Sprintf("A minimum billing threshold of %s%s applies to all single entry protocols.",
			currencyPrefix, s.MinBilling.StringFixed(2)),
		PGANote: fmt.Sprintf("PGA-regulated commodities trigger a %dx scalar on the base commodity value.",
			s.PGAMultiplier),
	}
}
