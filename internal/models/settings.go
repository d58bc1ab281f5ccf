package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// SettingsKey is the namespaced key the committed settings record lives under.
const SettingsKey = "teu_admin_settings"

// DefaultAssetReference points at the brand logo shown by the host UI.
const DefaultAssetReference = "https://teuglobal.com/wp-content/uploads/2023/10/TEU-Global-Logo.png"

// Settings holds the admin-tunable fee parameters. It is always complete.
type Settings struct {
	MinBilling      decimal.Decimal
	SellRatePercent decimal.Decimal
	PGAMultiplier   int
	AssetReference  string
}

// DefaultSettings returns the compiled-in parameter set.
func DefaultSettings() Settings {
	return Settings{
		MinBilling:      decimal.RequireFromString("65.00"),
		SellRatePercent: decimal.RequireFromString("0.40"),
		PGAMultiplier:   3,
		AssetReference:  DefaultAssetReference,
	}
}

// Equal reports whether two settings carry the same values.
func (s Settings) Equal(o Settings) bool {
	return s.MinBilling.Equal(o.MinBilling) &&
		s.SellRatePercent.Equal(o.SellRatePercent) &&
		s.PGAMultiplier == o.PGAMultiplier &&
		s.AssetReference == o.AssetReference
}

// SettingsRecord is the flat persisted and wire form of Settings.
type SettingsRecord struct {
	MinBilling      float64 `json:"minBilling"`
	SellRatePercent float64 `json:"sellRatePercent"`
	PGAMultiplier   int     `json:"pgaMultiplier"`
	AssetReference  string  `json:"assetReference"`
	// Logo is the key older records used for AssetReference.
	Logo string `json:"logo,omitempty"`
}

// Record converts s to its persisted form.
func (s Settings) Record() SettingsRecord {
	return SettingsRecord{
		MinBilling:      s.MinBilling.InexactFloat64(),
		SellRatePercent: s.SellRatePercent.InexactFloat64(),
		PGAMultiplier:   s.PGAMultiplier,
		AssetReference:  s.AssetReference,
	}
}

// Settings converts a record back into Settings.
func (r SettingsRecord) Settings() Settings {
	asset := r.AssetReference
	if asset == "" {
		asset = r.Logo
	}
	return Settings{
		MinBilling:      decimal.NewFromFloat(r.MinBilling),
		SellRatePercent: decimal.NewFromFloat(r.SellRatePercent),
		PGAMultiplier:   r.PGAMultiplier,
		AssetReference:  asset,
	}
}

// MarshalSettings encodes s as the persisted JSON record.
func MarshalSettings(s Settings) ([]byte, error) {
	return json.Marshal(s.Record())
}

// UnmarshalSettings decodes a persisted record. Fields missing from the
// record keep their default values so the result is always complete.
func UnmarshalSettings(data []byte) (Settings, error) {
	rec := DefaultSettings().Record()
	rec.AssetReference = ""
	if err := json.Unmarshal(data, &rec); err != nil {
		return Settings{}, fmt.Errorf("decode settings record: %w", err)
	}
	if rec.AssetReference == "" && rec.Logo == "" {
		rec.AssetReference = DefaultAssetReference
	}
	return rec.Settings(), nil
}
