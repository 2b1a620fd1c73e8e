package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	chunkedtypes "github.com/cosmos/ibc-lite/modules/core/chunked/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

// ClientKeeper is the client registry interface consumed by the packet
// handler.
type ClientKeeper interface {
	GetClientCounterparty(ctx sdk.Context, clientID string) (clienttypes.CounterpartyInfo, bool)
	GetClientStatus(ctx sdk.Context, clientID string) exported.Status
	GetClientLatestHeight(ctx sdk.Context, clientID string) uint64
	GetClientTimestampAtHeight(ctx sdk.Context, clientID string, height uint64) (uint64, error)
	VerifyMembership(ctx sdk.Context, clientID string, height uint64, path [][]byte, value, proof []byte) error
	VerifyNonMembership(ctx sdk.Context, clientID string, height uint64, path [][]byte, proof []byte) error
}

// ChunkKeeper is the chunked transport interface consumed by the packet
// handler to resolve proofs submitted in either transport mode.
type ChunkKeeper interface {
	ResolveProof(ctx sdk.Context, submitter string, proof chunkedtypes.ProofData) ([]byte, error)
}
