package groth16

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-lite/modules/core/02-client/types"
	"github.com/cosmos/ibc-lite/modules/core/exported"
)

var _ exported.LightClientModule = (*LightClientModule)(nil)

// LightClientModule implements the core exported.LightClientModule interface
// for the succinct-proof verification strategy.
type LightClientModule struct {
	storeProvider clienttypes.StoreProvider
}

// NewLightClientModule creates and returns a new groth16 LightClientModule.
func NewLightClientModule(storeProvider clienttypes.StoreProvider) LightClientModule {
	return LightClientModule{
		storeProvider: storeProvider,
	}
}

// Initialize decodes the provided client and consensus states, performs
// basic validation (including verification key well-formedness) and stores
// them at the client's latest height.
func (l LightClientModule) Initialize(ctx sdk.Context, clientID string, clientStateBz, consensusStateBz []byte) error {
	clientState, err := ABIDecodeClientState(clientStateBz)
	if err != nil {
		return err
	}

	if err := clientState.Validate(); err != nil {
		return err
	}

	consensusState, err := ABIDecodeConsensusState(consensusStateBz)
	if err != nil {
		return err
	}

	if err := consensusState.ValidateBasic(); err != nil {
		return err
	}

	clientStore := l.storeProvider.ClientStore(ctx, clientID)

	setConsensusState(clientStore, consensusState, clientState.LatestHeight)
	setClientState(clientStore, clientState)

	return nil
}

// VerifyClientMessage obtains the client state and verifies the message's
// consensus proof against the fixed verification key.
func (l LightClientModule) VerifyClientMessage(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) error {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		return errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID)
	}

	return clientState.VerifyClientMessage(ctx, clientStore, clientMsg)
}

// CheckForMisbehaviour reports whether the client message evidences
// conflicting proven state for an already proven height.
func (l LightClientModule) CheckForMisbehaviour(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) bool {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		panic(errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID))
	}

	return clientState.CheckForMisbehaviour(ctx, clientStore, clientMsg)
}

// UpdateStateOnMisbehaviour freezes the client.
func (l LightClientModule) UpdateStateOnMisbehaviour(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		panic(errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID))
	}

	clientState.Frozen = true
	setClientState(clientStore, clientState)
}

// UpdateState stores the proven consensus state for the claimed height.
func (l LightClientModule) UpdateState(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) []uint64 {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		panic(errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID))
	}

	return clientState.UpdateState(ctx, clientStore, clientMsg)
}

// VerifyMembership verifies an ics23 merkle proof against the proven root.
func (l LightClientModule) VerifyMembership(ctx sdk.Context, clientID string, height uint64, path [][]byte, value, proof []byte) error {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		return errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID)
	}

	return clientState.verifyMembership(clientStore, height, path, value, proof)
}

// VerifyNonMembership verifies an ics23 absence proof against the proven root.
func (l LightClientModule) VerifyNonMembership(ctx sdk.Context, clientID string, height uint64, path [][]byte, proof []byte) error {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		return errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID)
	}

	return clientState.verifyNonMembership(clientStore, height, path, proof)
}

// Status returns the status of the client: Frozen after misbehaviour,
// Unknown if no client state is stored, Active otherwise.
func (l LightClientModule) Status(ctx sdk.Context, clientID string) exported.Status {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		return exported.Unknown
	}

	if clientState.Frozen {
		return exported.Frozen
	}

	return exported.Active
}

// LatestHeight returns the latest proven counterparty height.
func (l LightClientModule) LatestHeight(ctx sdk.Context, clientID string) uint64 {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		return 0
	}

	return clientState.LatestHeight
}

// TimestampAtHeight returns the proven timestamp of the consensus state
// stored at the given height.
func (l LightClientModule) TimestampAtHeight(ctx sdk.Context, clientID string, height uint64) (uint64, error) {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	consensusState, found := getConsensusState(clientStore, height)
	if !found {
		return 0, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "height (%d)", height)
	}

	return consensusState.Timestamp, nil
}
