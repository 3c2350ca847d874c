package types

// Event types for the Feeds module
const (
	EventTypeTemporalNumericValueUpdate = "temporal_numeric_value_update"
	EventTypeFeedsInit                  = "feeds_init"
	EventTypeFeedsConfigUpdate          = "feeds_config_update"
)

// Event attribute keys for the Feeds module
const (
	AttributeKeyID             = "id"
	AttributeKeyTimestampNs    = "timestamp_ns"
	AttributeKeyQuantizedValue = "quantized_value"

	AttributeKeySignerKey            = "evm_public_key"
	AttributeKeySingleUpdateFee      = "single_update_fee"
	AttributeKeySingleUpdateFeeDenom = "single_update_fee_denom"
	AttributeKeyOwner                = "owner"
	AttributeKeyValidTimePeriod      = "valid_time_period_seconds"

	AttributeKeyField    = "field"
	AttributeKeyOldValue = "old_value"
	AttributeKeyNewValue = "new_value"
)

// Config fields reported in feeds_config_update events
const (
	ConfigFieldOwner           = "owner"
	ConfigFieldSignerKey       = "signer_key"
	ConfigFieldSingleUpdateFee = "single_update_fee"
	ConfigFieldValidTimePeriod = "valid_time_period_seconds"
)
