package host

import "fmt"

const (
	// KeyClientStorePrefix defines the prefix under which all per-client
	// state is isolated.
	KeyClientStorePrefix = "clients"

	// KeyClientState is the key under which a client state record is stored
	// within the client prefix store.
	KeyClientState = "clientState"

	// KeyConsensusStatePrefix prefixes height-keyed consensus state records
	// within the client prefix store.
	KeyConsensusStatePrefix = "consensusStates"
)

// FullClientStatePath takes a client identifier and returns the absolute
// path to the client state within the client store.
func FullClientStatePath(clientID string) string {
	return fmt.Sprintf("%s/%s/%s", KeyClientStorePrefix, clientID, KeyClientState)
}

// ClientStateKey returns the store key for a particular client state,
// relative to the client prefix store.
func ClientStateKey() []byte {
	return []byte(KeyClientState)
}

// ConsensusStateKey returns the store key for the consensus state at a
// particular height, relative to the client prefix store.
func ConsensusStateKey(height uint64) []byte {
	return []byte(fmt.Sprintf("%s/%d", KeyConsensusStatePrefix, height))
}
