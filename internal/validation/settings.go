package validation

import "sebengine/internal/models"

// Settings validates a settings draft before it is committed
func (v *Validator) Settings(s models.Settings) {
	v.NonNegative("minBilling", s.MinBilling)
	v.NonNegative("sellRatePercent", s.SellRatePercent)
	v.AtLeast("pgaMultiplier", s.PGAMultiplier, MinPGAMultiplier)
	v.Required("assetReference", s.AssetReference)
	v.MaxLength("assetReference", s.AssetReference, MaxAssetReferenceLength)
}
