package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-lite/modules/core/chunked/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

// Keeper is the chunked transport store. Submitters upload objects that
// exceed the per-message size bound in fixed-size chunks; handlers
// reassemble them byte-exactly on consumption. Uploads are keyed by
// uploader, so concurrent uploads never contend.
type Keeper struct {
	storeKey storetypes.StoreKey
}

// NewKeeper creates a new chunked transport Keeper instance.
func NewKeeper(storeKey storetypes.StoreKey) *Keeper {
	return &Keeper{storeKey: storeKey}
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// PutChunk stores a single chunk of a pending upload. Chunks may arrive in
// any order; only reassembly requires the full contiguous range.
func (k *Keeper) PutChunk(ctx sdk.Context, uploader string, objectID uint64, index uint32, data []byte) error {
	if len(data) == 0 {
		return errorsmod.Wrap(types.ErrInvalidChunk, "chunk data cannot be empty")
	}
	if len(data) > types.MaxChunkSize {
		return errorsmod.Wrapf(types.ErrChunkTooLarge, "chunk size %d exceeds maximum %d", len(data), types.MaxChunkSize)
	}
	if uploader == "" {
		return errorsmod.Wrap(types.ErrInvalidChunk, "uploader cannot be empty")
	}

	store := ctx.KVStore(k.storeKey)
	store.Set(types.ChunkKey(uploader, objectID, index), data)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeStoreChunk,
			sdk.NewAttribute(types.AttributeKeyUploader, uploader),
			sdk.NewAttribute(types.AttributeKeyObjectID, fmt.Sprintf("%d", objectID)),
			sdk.NewAttribute(types.AttributeKeyChunkIndex, fmt.Sprintf("%d", index)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		),
	})

	return nil
}

// HasChunk reports whether the chunk at the given index is stored.
func (k *Keeper) HasChunk(ctx sdk.Context, uploader string, objectID uint64, index uint32) bool {
	return ctx.KVStore(k.storeKey).Has(types.ChunkKey(uploader, objectID, index))
}

// Resolve reassembles a pre-uploaded object by reading its chunks in index
// order and concatenating them byte-exactly. Only the uploader may consume
// an upload. All chunk records are deleted after successful reassembly.
func (k *Keeper) Resolve(ctx sdk.Context, submitter string, ref types.ChunkedRef) ([]byte, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if submitter != ref.Uploader {
		return nil, errorsmod.Wrapf(types.ErrChunkOwnershipMismatch, "upload owned by %s, consumed by %s", ref.Uploader, submitter)
	}

	store := ctx.KVStore(k.storeKey)

	var object []byte
	for index := uint32(0); index < ref.TotalChunks; index++ {
		chunk := store.Get(types.ChunkKey(ref.Uploader, ref.ObjectID, index))
		if len(chunk) == 0 {
			return nil, errorsmod.Wrapf(types.ErrIncompleteUpload, "missing chunk %d of %d for object %d", index, ref.TotalChunks, ref.ObjectID)
		}
		object = append(object, chunk...)
	}

	for index := uint32(0); index < ref.TotalChunks; index++ {
		store.Delete(types.ChunkKey(ref.Uploader, ref.ObjectID, index))
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeConsumeUpload,
			sdk.NewAttribute(types.AttributeKeyUploader, ref.Uploader),
			sdk.NewAttribute(types.AttributeKeyObjectID, fmt.Sprintf("%d", ref.ObjectID)),
			sdk.NewAttribute(types.AttributeKeyTotalChunks, fmt.Sprintf("%d", ref.TotalChunks)),
		),
	)

	return object, nil
}

// ResolveProof returns the proof bytes for either transport mode: inline
// data is returned directly, chunked references are reassembled and
// consumed.
func (k *Keeper) ResolveProof(ctx sdk.Context, submitter string, proof types.ProofData) ([]byte, error) {
	if err := proof.Validate(); err != nil {
		return nil, err
	}

	if proof.Chunked == nil {
		return proof.Inline, nil
	}

	return k.Resolve(ctx, submitter, *proof.Chunked)
}

// AbortUpload deletes all stored chunks of a pending upload. Only the
// uploader may abort its own upload. Missing chunks are skipped so a
// partially failed upload can always be cleaned up.
func (k *Keeper) AbortUpload(ctx sdk.Context, submitter string, ref types.ChunkedRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	if submitter != ref.Uploader {
		return errorsmod.Wrapf(types.ErrChunkOwnershipMismatch, "upload owned by %s, aborted by %s", ref.Uploader, submitter)
	}

	store := ctx.KVStore(k.storeKey)
	for index := uint32(0); index < ref.TotalChunks; index++ {
		store.Delete(types.ChunkKey(ref.Uploader, ref.ObjectID, index))
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAbortUpload,
			sdk.NewAttribute(types.AttributeKeyUploader, ref.Uploader),
			sdk.NewAttribute(types.AttributeKeyObjectID, fmt.Sprintf("%d", ref.ObjectID)),
		),
	)

	return nil
}
