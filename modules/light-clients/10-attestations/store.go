package attestations

import (
	storetypes "cosmossdk.io/store/types"

	host "github.com/cosmos/ibc-lite/modules/core/24-host"
)

// getClientState retrieves the client state from the client prefix store.
func getClientState(store storetypes.KVStore) (*ClientState, bool) {
	bz := store.Get(host.ClientStateKey())
	if len(bz) == 0 {
		return nil, false
	}

	clientState, err := ABIDecodeClientState(bz)
	if err != nil {
		return nil, false
	}
	return clientState, true
}

// setClientState stores the client state in the client prefix store.
func setClientState(store storetypes.KVStore, clientState *ClientState) {
	bz, err := clientState.ABIEncode()
	if err != nil {
		panic(err)
	}
	store.Set(host.ClientStateKey(), bz)
}

// getConsensusState retrieves the consensus state at the given height.
func getConsensusState(store storetypes.KVStore, height uint64) (*ConsensusState, bool) {
	bz := store.Get(host.ConsensusStateKey(height))
	if len(bz) == 0 {
		return nil, false
	}

	consensusState, err := ABIDecodeConsensusState(bz)
	if err != nil {
		return nil, false
	}
	return consensusState, true
}

// setConsensusState stores the consensus state at the given height.
// Consensus states are immutable once created: overwrites only happen via
// the misbehaviour path which freezes the client instead.
func setConsensusState(store storetypes.KVStore, consensusState *ConsensusState, height uint64) {
	bz, err := consensusState.ABIEncode()
	if err != nil {
		panic(err)
	}
	store.Set(host.ConsensusStateKey(height), bz)
}
