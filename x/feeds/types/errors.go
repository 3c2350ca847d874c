package types

import (
	"errors"

	sdkerrors "cosmossdk.io/errors"
)

// Feeds module sentinel errors
var (
	// Update errors
	ErrInvalidSignature  = sdkerrors.Register(ModuleName, 2, "invalid signature")
	ErrInsufficientFunds = sdkerrors.Register(ModuleName, 3, "insufficient funds")

	// Registry errors
	ErrFeedNotFound = sdkerrors.Register(ModuleName, 4, "feed not found")
	ErrStaleValue   = sdkerrors.Register(ModuleName, 8, "stale value")

	// Admin errors
	ErrNotAuthorized = sdkerrors.Register(ModuleName, 5, "not authorized")
	ErrInvalidConfig = sdkerrors.Register(ModuleName, 6, "invalid config")

	// Decoding errors
	ErrDeserialization   = sdkerrors.Register(ModuleName, 7, "deserialization error")
	ErrInvalidUpdateData = sdkerrors.Register(ModuleName, 9, "invalid update data")
)

// ErrorWithRecovery wraps an error with recovery suggestions
type ErrorWithRecovery struct {
	Err      error
	Recovery string
}

func (e *ErrorWithRecovery) Error() string {
	return e.Err.Error()
}

func (e *ErrorWithRecovery) Unwrap() error {
	return e.Err
}

// Cause lets cosmossdk.io/errors reach the registered error when it resolves
// the ABCI code and codespace.
func (e *ErrorWithRecovery) Cause() error {
	return e.Err
}

// RecoverySuggestions provides actionable recovery steps for each error type
var RecoverySuggestions = map[error]string{
	ErrInvalidSignature:  "Attestation signature does not recover to the configured signer key. Query the signer key and compare with the publisher. Check that the update was not modified after signing.",
	ErrInsufficientFunds: "Attached funds do not cover the fee for the accepted updates. Query the single update fee or estimate the batch fee with the update fee query. Attach funds in the fee denomination.",
	ErrFeedNotFound:      "No value has been stored for this asset id. Verify the id is the 32-byte encoded asset id. Submit an update for the asset first.",
	ErrStaleValue:        "Stored value is older than the valid time period. Submit a fresh update or read the value with the unchecked query.",
	ErrNotAuthorized:     "Only the current owner may change configuration. Query the owner and sign the message with that account.",
	ErrInvalidConfig:     "Configuration value is malformed. The signer key must be a 20-byte address and the fee a valid coin.",
	ErrDeserialization:   "Stored bytes could not be decoded. A temporal numeric value record is exactly 24 bytes.",
	ErrInvalidUpdateData: "Update data failed basic validation. Ids, merkle roots, algorithm hashes, r and s are 32-byte hex strings and values fit in a signed 128-bit integer.",
}

// WrapWithRecovery wraps an error with recovery suggestion
func WrapWithRecovery(err error, msg string, args ...interface{}) error {
	wrapped := sdkerrors.Wrapf(err, msg, args...)

	if suggestion, ok := RecoverySuggestions[err]; ok {
		return &ErrorWithRecovery{
			Err:      wrapped,
			Recovery: suggestion,
		}
	}

	return wrapped
}

// GetRecoverySuggestion returns the recovery suggestion for an error
func GetRecoverySuggestion(err error) string {
	rootErr := err
	for {
		if unwrapped := errors.Unwrap(rootErr); unwrapped != nil {
			rootErr = unwrapped
		} else {
			break
		}
	}

	if suggestion, ok := RecoverySuggestions[rootErr]; ok {
		return suggestion
	}

	return "No recovery suggestion available. Check error message for details. Query the feeds module configuration."
}
