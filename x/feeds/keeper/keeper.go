package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	feedstelemetry "github.com/paw-chain/feeds/app/telemetry"
	"github.com/paw-chain/feeds/x/feeds/types"
	"github.com/paw-chain/feeds/x/feeds/verify"
)

// Keeper maintains the state of the Feeds module
type Keeper struct {
	cdc        codec.BinaryCodec
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	crypto     verify.Crypto
	authority  string // fallback owner used when genesis names none
	metrics    *FeedsMetrics
	telemetry  *feedstelemetry.Provider
}

// NewKeeper creates a new Feeds Keeper instance. A nil crypto selects
// verify.Default.
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	crypto verify.Crypto,
	authority string,
) *Keeper {
	if crypto == nil {
		crypto = verify.Default
	}
	return &Keeper{
		cdc:        cdc,
		storeKey:   key,
		bankKeeper: bankKeeper,
		crypto:     crypto,
		authority:  authority,
		metrics:    NewFeedsMetrics(),
		telemetry:  feedstelemetry.Noop(),
	}
}

// SetTelemetry routes keeper spans and batch instruments through p. A nil p
// restores the no-op provider.
func (k *Keeper) SetTelemetry(p *feedstelemetry.Provider) {
	if p == nil {
		p = feedstelemetry.Noop()
	}
	k.telemetry = p
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the module authority
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Crypto returns the capability used to authenticate attestations
func (k Keeper) Crypto() verify.Crypto {
	return k.crypto
}

// getStore returns the KVStore for the feeds module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
