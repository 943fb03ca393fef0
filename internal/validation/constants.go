package validation

// MinRegularSymbols keeps enough symbols outside the winning runs for a
// no-win background palette.
const MinRegularSymbols = 7

// RTPWarningTolerance is the allowed gap between theoretical and target RTP
const RTPWarningTolerance = 0.05

// Report messages
const (
	MsgStructural          = "structure: %v"
	MsgSymbols             = "symbols: %v"
	MsgTooFewRegular       = "symbols: %d regular symbols, need at least %d"
	MsgProbabilitySum      = "mode %s profile %s: tier probabilities %.4f + multiplier spawn %.4f + nft drops %.4f = %.4f exceeds 1"
	MsgTierRange           = "mode %s profile %s tier %s: min multiplier %.2f exceeds max %.2f"
	MsgTierUnattainable    = "mode %s profile %s tier %s: range [%.2f, %.2f] cannot be produced (grid pays %.2f to %.2f)"
	MsgUnknownMode         = "mode %s is not a known grid mode"
	MsgMissingDefault      = "mode %s: default profile %q is not defined"
	MsgBasePrice           = "mode %s: base price %.4f must be positive for the %s model"
	MsgFundRate            = "mode %s: fund rate %.4f outside [0, 1]"
	MsgPriceBounds         = "mode %s: min price %.4f exceeds max price %.4f"
	MsgPriceBoundPrecision = "mode %s: price bound %v has more than %d decimals"
	MsgMissingBonus        = "nft: tier %s can drop in mode %s but has no bonus multiplier"
	MsgTheoreticalRTP      = "mode %s profile %s: theoretical RTP %.4f differs from target %.4f by more than %.0fpp"
	MsgNoPatternOdds       = "shards: pattern %s has no drop odds"
	MsgUnknownBundleErrors = "bundle has %d configuration errors"
)

// Log messages
const (
	LogMsgBundleWarning = "Engine bundle warning"
	LogMsgBundleInvalid = "Engine bundle invalid"
)
