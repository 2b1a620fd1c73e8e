package types

const (
	// SubModuleName defines the packet handler name.
	SubModuleName = "packetserver"
)

// BaseSequenceKey returns the store key for the per-client base counter
// used by sequence allocation.
func BaseSequenceKey(clientID string) []byte {
	return []byte("baseSequence/" + clientID)
}
