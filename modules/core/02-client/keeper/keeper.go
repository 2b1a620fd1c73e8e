package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-lite/modules/core/02-client/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

// Keeper represents the client registry. It owns client identity records,
// routes verification to the light client module selected per client at
// creation and gates every proof check on the client status.
type Keeper struct {
	storeKey      storetypes.StoreKey
	router        *types.Router
	storeProvider types.StoreProvider
}

// NewKeeper creates a new client Keeper instance.
func NewKeeper(storeKey storetypes.StoreKey) *Keeper {
	return &Keeper{
		storeKey:      storeKey,
		router:        types.NewRouter(),
		storeProvider: types.NewStoreProvider(storeKey),
	}
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// AddRoute registers the light client module for the given client type.
func (k *Keeper) AddRoute(clientType string, module exported.LightClientModule) {
	k.router.AddRoute(clientType, module)
}

// Route returns the light client module for the provided client identifier.
func (k *Keeper) Route(clientID string) (exported.LightClientModule, error) {
	route, ok := k.router.GetRoute(clientID)
	if !ok {
		return nil, errorsmod.Wrap(types.ErrRouteNotFound, clientID)
	}
	return route, nil
}

// GetStoreProvider returns the client store provider.
func (k *Keeper) GetStoreProvider() types.StoreProvider {
	return k.storeProvider
}

// ClientStore returns the store prefixed to the given client identifier.
func (k *Keeper) ClientStore(ctx sdk.Context, clientID string) storetypes.KVStore {
	return k.storeProvider.ClientStore(ctx, clientID)
}

// GetNextClientSequence returns the next client sequence used to generate
// client identifiers.
func (k *Keeper) GetNextClientSequence(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get([]byte(types.KeyNextClientSequence))
	if len(bz) == 0 {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// SetNextClientSequence sets the next client sequence.
func (k *Keeper) SetNextClientSequence(ctx sdk.Context, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set([]byte(types.KeyNextClientSequence), sdk.Uint64ToBigEndian(sequence))
}

// GenerateClientIdentifier returns the next client identifier for the given
// client type and bumps the global client sequence.
func (k *Keeper) GenerateClientIdentifier(ctx sdk.Context, clientType string) string {
	nextClientSeq := k.GetNextClientSequence(ctx)
	clientID := types.FormatClientIdentifier(clientType, nextClientSeq)

	nextClientSeq++
	k.SetNextClientSequence(ctx, nextClientSeq)
	return clientID
}

// SetClientCounterparty sets the counterparty info for the given client.
func (k *Keeper) SetClientCounterparty(ctx sdk.Context, clientID string, counterparty types.CounterpartyInfo) {
	bz, err := counterparty.ABIEncode()
	if err != nil {
		panic(err)
	}
	k.ClientStore(ctx, clientID).Set([]byte(types.KeyCounterparty), bz)
}

// GetClientCounterparty returns the counterparty info for the given client.
func (k *Keeper) GetClientCounterparty(ctx sdk.Context, clientID string) (types.CounterpartyInfo, bool) {
	bz := k.ClientStore(ctx, clientID).Get([]byte(types.KeyCounterparty))
	if len(bz) == 0 {
		return types.CounterpartyInfo{}, false
	}

	counterparty, err := types.ABIDecodeCounterpartyInfo(bz)
	if err != nil {
		panic(err)
	}
	return counterparty, true
}

// GetParams returns the total set of client parameters.
func (k *Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get([]byte(types.ParamsKey))
	if len(bz) == 0 {
		return types.DefaultParams()
	}

	params, err := types.ABIDecodeParams(bz)
	if err != nil {
		panic(err)
	}
	return params
}

// SetParams sets the total set of client parameters.
func (k *Keeper) SetParams(ctx sdk.Context, params types.Params) {
	store := ctx.KVStore(k.storeKey)
	bz, err := params.ABIEncode()
	if err != nil {
		panic(err)
	}
	store.Set([]byte(types.ParamsKey), bz)
}

// GetClientStatus returns the status of the client identified by clientID.
// Unknown is returned for unregistered client types.
func (k *Keeper) GetClientStatus(ctx sdk.Context, clientID string) exported.Status {
	lightClientModule, err := k.Route(clientID)
	if err != nil {
		return exported.Unknown
	}
	return lightClientModule.Status(ctx, clientID)
}

// GetClientLatestHeight returns the latest attested height of the client.
// Zero is returned for unregistered client types.
func (k *Keeper) GetClientLatestHeight(ctx sdk.Context, clientID string) uint64 {
	lightClientModule, err := k.Route(clientID)
	if err != nil {
		return 0
	}
	return lightClientModule.LatestHeight(ctx, clientID)
}

// GetClientTimestampAtHeight returns the timestamp, in unix nanoseconds, of
// the consensus state stored for the client at the given height.
func (k *Keeper) GetClientTimestampAtHeight(ctx sdk.Context, clientID string, height uint64) (uint64, error) {
	lightClientModule, err := k.Route(clientID)
	if err != nil {
		return 0, errorsmod.Wrapf(err, "clientID (%s)", clientID)
	}
	return lightClientModule.TimestampAtHeight(ctx, clientID, height)
}

// VerifyMembership routes a membership proof check to the light client
// module of the given client. An inactive client fails closed.
func (k *Keeper) VerifyMembership(ctx sdk.Context, clientID string, height uint64, path [][]byte, value, proof []byte) error {
	lightClientModule, err := k.Route(clientID)
	if err != nil {
		return errorsmod.Wrapf(err, "clientID (%s)", clientID)
	}

	if status := lightClientModule.Status(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot verify membership with client (%s) with status %s", clientID, status)
	}

	return lightClientModule.VerifyMembership(ctx, clientID, height, path, value, proof)
}

// VerifyNonMembership routes a non-membership proof check to the light
// client module of the given client. An inactive client fails closed.
func (k *Keeper) VerifyNonMembership(ctx sdk.Context, clientID string, height uint64, path [][]byte, proof []byte) error {
	lightClientModule, err := k.Route(clientID)
	if err != nil {
		return errorsmod.Wrapf(err, "clientID (%s)", clientID)
	}

	if status := lightClientModule.Status(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot verify non-membership with client (%s) with status %s", clientID, status)
	}

	return lightClientModule.VerifyNonMembership(ctx, clientID, height, path, proof)
}
