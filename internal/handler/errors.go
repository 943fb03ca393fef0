package handler

import "errors"

// errTrailingData rejects bodies holding more than one JSON value
var errTrailingData = errors.New("unexpected data after JSON body")

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgEmptyBody             = "Request body is empty"
	ErrMsgRequestTooLarge       = "Request body is too large"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidLimit          = "Invalid limit parameter"

	ErrMsgSpinFailed          = "Failed to resolve spin"
	ErrMsgGetResultsFailed    = "Failed to retrieve results"
	ErrMsgGetShardsFailed     = "Failed to retrieve shard balance"
	ErrMsgRedeemShardsFailed  = "Failed to redeem shards"
	ErrMsgQuotePriceFailed    = "Failed to quote spin price"
	ErrMsgGetRTPStateFailed   = "Failed to retrieve RTP state"
	ErrMsgResultNotFoundHTTP  = "Game result not found"
	ErrMsgGetFreeSpinsFailed  = "Failed to retrieve free spins"
	ErrMsgDependencyUnhealthy = "dependency check failed"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidBetError       = "Bet is outside the allowed range for this mode"
	ErrMsgNoFreeSpinsError      = "No free spins remaining"
	ErrMsgUnknownModeError      = "Unknown grid mode"
	ErrMsgUnknownProfileError   = "Unknown volatility profile"
	ErrMsgInsufficientShardsErr = "Not enough shards to redeem"
	ErrMsgUnknownShardTierError = "Unknown shard tier"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError      = "Server is temporarily unavailable. Please try again later."
)

// Log messages
const (
	LogMsgRequestDecodeFailed = "Failed to decode request"
	LogMsgRequestInvalid      = "Request failed validation"
	LogMsgSpinResolved        = "Spin resolved"
	LogMsgServiceCallFailed   = "Service call failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgReadinessFailed     = "Readiness check failed"
)

// Query parameters and defaults
const (
	QueryParamMode       = "mode"
	QueryParamVolatility = "volatility"
	QueryParamLimit      = "limit"
	QueryParamUserID     = "user_id"
	URLParamUserID       = "userID"
	URLParamGameID       = "gameID"
)

// Response headers
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)
