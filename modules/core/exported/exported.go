package exported

const (
	// ModuleName is the name of the ibc-lite module.
	ModuleName = "ibclite"

	// StoreKey is the store key for the ibc-lite module.
	StoreKey = ModuleName

	// Attestations identifies the quorum-attestation verification strategy.
	Attestations = "attestations"

	// Groth16 identifies the succinct-proof verification strategy.
	Groth16 = "groth16"
)

// Status represents the status of a client.
type Status string

const (
	// Active is a client that can verify proofs and accept updates.
	Active Status = "Active"

	// Frozen is a client that evidenced misbehaviour. Frozen clients reject
	// all verification and update requests permanently.
	Frozen Status = "Frozen"

	// Unknown indicates the client state is missing or cannot be decoded.
	Unknown Status = "Unknown"
)

// String implements the Stringer interface.
func (s Status) String() string {
	return string(s)
}

// ClientMessage is a generic interface for client updates: headers,
// attestation claims and misbehaviour evidence.
type ClientMessage interface {
	// ClientType returns the type of the light client the message targets.
	ClientType() string

	// ValidateBasic performs stateless validation of the message.
	ValidateBasic() error
}
