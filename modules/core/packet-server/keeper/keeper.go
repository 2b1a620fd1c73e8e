package keeper

import (
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/cosmos/ibc-lite/modules/core/24-host"
	"github.com/cosmos/ibc-lite/modules/core/api"
	"github.com/cosmos/ibc-lite/modules/core/exported"
	"github.com/cosmos/ibc-lite/modules/core/packet-server/types"
)

// Keeper is the packet handler. It orchestrates the packet lifecycle using
// the client keeper for proof checks, the chunk keeper for oversized proof
// transport and the commitment/receipt/acknowledgement stores for replay
// protection.
type Keeper struct {
	storeKey storetypes.StoreKey

	// Router routes application callbacks by port identifier.
	Router *api.Router

	ClientKeeper types.ClientKeeper
	ChunkKeeper  types.ChunkKeeper
}

// NewKeeper creates a new packet Keeper instance.
func NewKeeper(storeKey storetypes.StoreKey, clientKeeper types.ClientKeeper, chunkKeeper types.ChunkKeeper) *Keeper {
	return &Keeper{
		storeKey:     storeKey,
		Router:       api.NewRouter(),
		ClientKeeper: clientKeeper,
		ChunkKeeper:  chunkKeeper,
	}
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// GetBaseSequence returns the base counter used for sequence allocation on
// the given client. The counter starts at 1 so derived sequences are never
// zero.
func (k *Keeper) GetBaseSequence(ctx sdk.Context, clientID string) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.BaseSequenceKey(clientID))
	if len(bz) == 0 {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

// SetBaseSequence sets the base counter for the given client.
func (k *Keeper) SetBaseSequence(ctx sdk.Context, clientID string, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.BaseSequenceKey(clientID), sdk.Uint64ToBigEndian(sequence))
}

// allocateSequence derives the packet sequence for the (application,
// sender) pair from the client's base counter and bumps the counter. The
// per-client counter is the only serialization point between concurrent
// sends.
func (k *Keeper) allocateSequence(ctx sdk.Context, clientID, appID, sender string) (uint64, error) {
	base := k.GetBaseSequence(ctx, clientID)

	sequence, err := types.DeriveSequence(base, appID, sender)
	if err != nil {
		return 0, err
	}

	k.SetBaseSequence(ctx, clientID, base+1)
	return sequence, nil
}

// GetPacketCommitment returns the packet commitment stored under the
// (sourceClient, sequence) pair.
func (k *Keeper) GetPacketCommitment(ctx sdk.Context, sourceClient string, sequence uint64) []byte {
	store := ctx.KVStore(k.storeKey)
	return store.Get(host.PacketCommitmentKey(sourceClient, sequence))
}

// SetPacketCommitment sets the packet commitment.
func (k *Keeper) SetPacketCommitment(ctx sdk.Context, sourceClient string, sequence uint64, commitment []byte) {
	store := ctx.KVStore(k.storeKey)
	store.Set(host.PacketCommitmentKey(sourceClient, sequence), commitment)
}

// DeletePacketCommitment deletes the packet commitment. Exactly one of
// acknowledge or timeout deletes it, completing the packet lifecycle.
func (k *Keeper) DeletePacketCommitment(ctx sdk.Context, sourceClient string, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(host.PacketCommitmentKey(sourceClient, sequence))
}

// HasPacketReceipt reports whether a packet receipt exists for the
// (destClient, sequence) pair.
func (k *Keeper) HasPacketReceipt(ctx sdk.Context, destClient string, sequence uint64) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(host.PacketReceiptKey(destClient, sequence))
}

// SetPacketReceipt writes the permanent packet receipt. Receipts are never
// deleted; they are the replay protection for recv.
func (k *Keeper) SetPacketReceipt(ctx sdk.Context, destClient string, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(host.PacketReceiptKey(destClient, sequence), []byte{byte(2)})
}

// GetPacketAcknowledgement returns the acknowledgement commitment stored
// under the (destClient, sequence) pair.
func (k *Keeper) GetPacketAcknowledgement(ctx sdk.Context, destClient string, sequence uint64) []byte {
	store := ctx.KVStore(k.storeKey)
	return store.Get(host.PacketAcknowledgementKey(destClient, sequence))
}

// HasPacketAcknowledgement reports whether an acknowledgement commitment
// exists for the (destClient, sequence) pair.
func (k *Keeper) HasPacketAcknowledgement(ctx sdk.Context, destClient string, sequence uint64) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(host.PacketAcknowledgementKey(destClient, sequence))
}

// SetPacketAcknowledgement sets the acknowledgement commitment.
func (k *Keeper) SetPacketAcknowledgement(ctx sdk.Context, destClient string, sequence uint64, ackCommitment []byte) {
	store := ctx.KVStore(k.storeKey)
	store.Set(host.PacketAcknowledgementKey(destClient, sequence), ackCommitment)
}
