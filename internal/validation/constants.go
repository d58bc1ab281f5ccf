package validation

const (
	// Settings limits
	MinPGAMultiplier        = 1
	MaxAssetReferenceLength = 2048
)
